package reconcile

// Garment is one catalog entry as the engine sees it.
type Garment struct {
	// ID is the catalog identity of the garment.
	ID uint

	// Name is the display name, which is also the key tag reads resolve to.
	Name string

	// Category is the free-form classification (e.g. "Pack", "Prenda Blanca").
	Category string

	// PackIdentifier marks the one tag type that identifies an assembled
	// pack, as opposed to a loose component garment.
	PackIdentifier bool
}

// Component is one bill-of-materials line: the named garment is consumed
// Quantity times per assembled pack.
type Component struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// BillOfMaterials maps a pack garment ID to its component lines.
type BillOfMaterials map[uint][]Component

// Targets maps a pack garment ID to the client's configured target quantity.
// A pack without an entry simply has a zero target; that is configuration,
// not an error.
type Targets map[uint]int

// Snapshot maps a garment name to a non-negative count, scoped either to one
// location or to the global total. Snapshots are ephemeral and rebuilt per
// pass.
type Snapshot map[string]int

// NameSet is the set of garment names currently in the catalog.
type NameSet map[string]struct{}

// NewNameSet builds the catalog name set used to filter consumption reads.
func NewNameSet(catalog []Garment) NameSet {
	s := make(NameSet, len(catalog))
	for _, g := range catalog {
		s[g.Name] = struct{}{}
	}
	return s
}

// MissingComponent describes one component shortfall for a pack.
type MissingComponent struct {
	Name      string `json:"name"`
	Required  int    `json:"required"`
	Available int    `json:"available"`
	Missing   int    `json:"missing"`
}

// IntegrityAlert signals that the packs counted right now cannot all be
// complete: at least one component's on-hand count is below what the current
// pack count requires.
type IntegrityAlert struct {
	PackName          string             `json:"pack_name"`
	PackCount         int                `json:"pack_count"`
	TargetQty         int                `json:"target_qty"`
	MissingComponents []MissingComponent `json:"missing_components"`
}

// ReplenishmentAlert signals that on-hand components are insufficient to
// assemble enough additional packs to reach the configured target.
type ReplenishmentAlert struct {
	PackID            uint               `json:"pack_id"`
	PackName          string             `json:"pack_name"`
	PackCount         int                `json:"pack_count"`
	TargetQty         int                `json:"target_qty"`
	MissingPacks      int                `json:"missing_packs"`
	MissingComponents []MissingComponent `json:"missing_components"`
}

// StockRow is the per-pack stock line emitted for every pack identifier,
// alert or not. Consumed is the to-be-replenished quantity, floored at zero;
// Delta may be negative (below target) or positive (above).
type StockRow struct {
	PackID   uint   `json:"pack_id"`
	Name     string `json:"name"`
	Current  int    `json:"current"`
	Consumed int    `json:"consumed"`
	Target   int    `json:"target"`
	Delta    int    `json:"delta"`
}

// Report is the reconciliation output for one scope.
type Report struct {
	PackStock           []StockRow           `json:"pack_stock"`
	IntegrityAlerts     []IntegrityAlert     `json:"integrity_alerts"`
	ReplenishmentAlerts []ReplenishmentAlert `json:"replenishment_alerts"`
}
