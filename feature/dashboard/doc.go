// Package dashboard orchestrates one full reconciliation pass per request:
// fetch the client's three exports, resolve raw tag reads through the maestro
// mapping, aggregate counts, and run the reconciliation engine. The payload
// it returns is everything the operator screens render, computed fresh each
// time; nothing intermediate is persisted.
package dashboard
