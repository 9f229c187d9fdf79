package dashboard

import (
	"context"
	"sync"

	"linen-tracker/core/fetch"
	"linen-tracker/core/reconcile"
	"linen-tracker/core/tabular"
	"linen-tracker/feature/catalog/models"

	"go.uber.org/zap"
)

// CatalogStore is the slice of the catalog the dashboard needs.
type CatalogStore interface {
	ClientByID(ctx context.Context, id uint) (*models.Client, error)
	EngineCatalog(ctx context.Context) ([]reconcile.Garment, error)
	BillOfMaterials(ctx context.Context) (reconcile.BillOfMaterials, error)
	TargetsForClient(ctx context.Context, clientID uint) (reconcile.Targets, error)
}

// Data is one full dashboard payload for one client.
type Data struct {
	Global            reconcile.Report              `json:"global"`
	Cabins            map[string]reconcile.Report   `json:"cabins"`
	RawCounts         reconcile.Snapshot            `json:"raw_counts"`
	LaundryCounts     reconcile.Snapshot            `json:"laundry_counts"`
	LaundryCount      int                           `json:"laundry_count"`
	LaundryByDay      map[string]reconcile.Snapshot `json:"laundry_by_day"`
	StockComposition  reconcile.Snapshot            `json:"stock_composition"`
	TotalStockItems   int                           `json:"total_stock_items"`
	UnresolvedStock   int                           `json:"unresolved_stock"`
	UnresolvedLaundry int                           `json:"unresolved_laundry"`
	ComponentTargets  map[string]int                `json:"component_targets"`
}

// Service assembles dashboard payloads. It owns no state between passes;
// every Build fetches, resolves and reconciles from scratch.
type Service struct {
	store  CatalogStore
	source fetch.Source
	logger *zap.Logger
}

// NewService creates a dashboard service.
func NewService(store CatalogStore, source fetch.Source, logger *zap.Logger) *Service {
	return &Service{store: store, source: source, logger: logger}
}

// Build runs one reconciliation pass for the given client and returns the
// dashboard payload.
//
// The three exports (maestro, cabin stock, consumption log) are fetched
// concurrently. A source that fails to fetch or decode degrades to an empty
// snapshot with a warning; the pass itself never aborts on a source failure.
// Only catalog lookups can fail the pass.
func (s *Service) Build(ctx context.Context, clientID uint) (*Data, error) {
	client, err := s.store.ClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.store.EngineCatalog(ctx)
	if err != nil {
		return nil, err
	}
	bom, err := s.store.BillOfMaterials(ctx)
	if err != nil {
		return nil, err
	}
	targets, err := s.store.TargetsForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	refs := [3]string{client.TagsURL, client.StockURL, client.LaundryURL}
	labels := [3]string{"maestro", "stock", "laundry"}
	var rows [3][][]string

	var wg sync.WaitGroup
	for i := range refs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rows[i] = s.fetchRows(ctx, labels[i], refs[i])
		}(i)
	}
	wg.Wait()

	mapping := reconcile.BuildTagMapping(rows[0])
	names := reconcile.NewNameSet(catalog)

	stock := reconcile.AggregateStock(rows[1], mapping)
	laundry := reconcile.AggregateConsumption(rows[2], mapping, names)

	composition := reconcile.FilterComposition(stock.Counts, names)
	report := reconcile.Reconcile(composition, catalog, bom, targets)

	return &Data{
		Global:            report,
		Cabins:            map[string]reconcile.Report{client.StockLocation: report},
		RawCounts:         stock.Counts,
		LaundryCounts:     laundry.Counts,
		LaundryCount:      laundry.Total,
		LaundryByDay:      laundry.ByDay,
		StockComposition:  composition,
		TotalStockItems:   stock.Seen,
		UnresolvedStock:   stock.Unresolved,
		UnresolvedLaundry: laundry.Unresolved,
		ComponentTargets:  reconcile.ComponentTargets(catalog, bom, targets),
	}, nil
}

// fetchRows pulls one export and decodes it, degrading to no rows on any
// failure. An unset reference is not an error; a client simply may not have
// all three feeds configured yet.
func (s *Service) fetchRows(ctx context.Context, label, ref string) [][]string {
	if ref == "" {
		return nil
	}

	raw, err := s.source.Fetch(ctx, ref)
	if err != nil {
		s.logger.Warn("Export fetch failed, continuing with empty snapshot",
			zap.String("export", label),
			zap.String("source", ref),
			zap.Error(err))
		return nil
	}

	rows, err := tabular.Decode(raw)
	if err != nil {
		s.logger.Warn("Export decode failed, continuing with empty snapshot",
			zap.String("export", label),
			zap.String("source", ref),
			zap.Error(err))
		return nil
	}
	return rows
}
