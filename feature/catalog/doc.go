// Package catalog owns the persisted reference data the reconciliation
// engine consumes: clients and their source endpoints, the garment catalog,
// pack recipes (bills of materials) and per-client stock targets.
//
// Targets use upsert semantics keyed by (client, pack); the last written
// quantity wins. Recipes are validated on write: a line may not reference an
// unknown garment and a pack may not list itself as a component.
package catalog
