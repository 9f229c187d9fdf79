// Package models defines the persisted catalog entities: clients, garments,
// pack recipes (bills of materials) and per-client targets.
package models
