// Package reconcile turns raw RFID tag reads into actionable pack inventory
// state: how many complete packs are on hand, whether the assembled stock is
// internally consistent, and how far stock is from the client's target.
//
// The package is pure computation. Every pass builds its own tag mapping and
// count snapshots from decoded rows; nothing is cached or shared between
// passes, so concurrent per-location reconciliations are independent by
// construction.
//
// # Pipeline
//
// 1. BuildTagMapping resolves raw identifiers (EPCs) to garment names from
// the maestro export.
//
// 2. AggregateStock and AggregateConsumption fold cabin and soiled-zone rows
// into per-garment counts, dropping rows that do not resolve (but counting
// them, so noise stays visible).
//
// 3. Reconcile expands each pack's bill of materials against a snapshot under
// two policies: integrity (can the packs counted right now actually be
// complete?) and replenishment (are there enough components on hand to reach
// the configured target?). The two are deliberately separate — an understocked
// but internally consistent pack must not raise an integrity alert, and a
// fully stocked pack short of components must not raise a replenishment one.
//
// # Usage Example
//
//	mapping := reconcile.BuildTagMapping(maestroRows)
//	stock := reconcile.AggregateStock(cabinRows, mapping)
//	report := reconcile.Reconcile(stock.Counts, catalog, bom, targets)
package reconcile
