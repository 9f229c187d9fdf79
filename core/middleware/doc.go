// Package middleware groups the HTTP middlewares shared by all features:
// API-key auth and ray-id request correlation.
package middleware
