package reconcile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func universalCatalog() ([]Garment, BillOfMaterials) {
	catalog := []Garment{
		{ID: 1, Name: "SG EQ UNIV EST", Category: "Pack", PackIdentifier: true},
		{ID: 2, Name: "RFID Campo Chico", Category: "Pack"},
		{ID: 3, Name: "RFID Campo Grande", Category: "Pack"},
	}
	bom := BillOfMaterials{
		1: {
			{Name: "RFID Campo Chico", Quantity: 4},
			{Name: "RFID Campo Grande", Quantity: 6},
		},
	}
	return catalog, bom
}

func TestReconcile_AlertAsymmetry(t *testing.T) {
	catalog := []Garment{
		{ID: 1, Name: "P", PackIdentifier: true},
		{ID: 2, Name: "C"},
	}
	bom := BillOfMaterials{1: {{Name: "C", Quantity: 2}}}
	targets := Targets{1: 5}

	report := Reconcile(Snapshot{"P": 3, "C": 4}, catalog, bom, targets)

	// Integrity: 3 assembled packs need 6 of C, only 4 on hand.
	require.Len(t, report.IntegrityAlerts, 1)
	ia := report.IntegrityAlerts[0]
	assert.Equal(t, "P", ia.PackName)
	assert.Equal(t, 3, ia.PackCount)
	assert.Equal(t, 5, ia.TargetQty)
	require.Len(t, ia.MissingComponents, 1)
	assert.Equal(t, MissingComponent{Name: "C", Required: 6, Available: 4, Missing: 2}, ia.MissingComponents[0])

	// Replenishment: reaching target 5 needs 10 of C, and the deficit of 2
	// packs gates the alert on.
	require.Len(t, report.ReplenishmentAlerts, 1)
	ra := report.ReplenishmentAlerts[0]
	assert.Equal(t, uint(1), ra.PackID)
	assert.Equal(t, 2, ra.MissingPacks)
	require.Len(t, ra.MissingComponents, 1)
	assert.Equal(t, MissingComponent{Name: "C", Required: 10, Available: 4, Missing: 6}, ra.MissingComponents[0])

	require.Len(t, report.PackStock, 1)
	assert.Equal(t, StockRow{PackID: 1, Name: "P", Current: 3, Consumed: 2, Target: 5, Delta: -2}, report.PackStock[0])
}

func TestReconcile_NoDeficitSuppressesReplenishment(t *testing.T) {
	catalog := []Garment{
		{ID: 1, Name: "P", PackIdentifier: true},
		{ID: 2, Name: "C"},
	}
	bom := BillOfMaterials{1: {{Name: "C", Quantity: 2}}}

	// Stock already at target; components short of the target expansion but
	// fine for the current count.
	report := Reconcile(Snapshot{"P": 5, "C": 10}, catalog, bom, Targets{1: 5})
	assert.Empty(t, report.IntegrityAlerts)
	assert.Empty(t, report.ReplenishmentAlerts)
	assert.Equal(t, 0, report.PackStock[0].Consumed)
	assert.Equal(t, 0, report.PackStock[0].Delta)

	// Above target: consumed stays floored at zero, delta goes positive.
	report = Reconcile(Snapshot{"P": 7, "C": 14}, catalog, bom, Targets{1: 5})
	assert.Empty(t, report.ReplenishmentAlerts)
	assert.Equal(t, 0, report.PackStock[0].Consumed)
	assert.Equal(t, 2, report.PackStock[0].Delta)
}

func TestReconcile_IntegrityWithoutReplenishment(t *testing.T) {
	catalog := []Garment{
		{ID: 1, Name: "P", PackIdentifier: true},
		{ID: 2, Name: "C"},
	}
	bom := BillOfMaterials{1: {{Name: "C", Quantity: 2}}}

	// At target but the assembled stock is short a component: integrity
	// alerts, replenishment stays quiet.
	report := Reconcile(Snapshot{"P": 5, "C": 9}, catalog, bom, Targets{1: 5})
	assert.Len(t, report.IntegrityAlerts, 1)
	assert.Empty(t, report.ReplenishmentAlerts)
}

func TestReconcile_Defaults(t *testing.T) {
	catalog, bom := universalCatalog()

	t.Run("unknown pack counts default to zero", func(t *testing.T) {
		report := Reconcile(Snapshot{}, catalog, bom, Targets{})
		require.Len(t, report.PackStock, 1)
		assert.Equal(t, StockRow{PackID: 1, Name: "SG EQ UNIV EST"}, report.PackStock[0])
		assert.Empty(t, report.IntegrityAlerts)
		assert.Empty(t, report.ReplenishmentAlerts)
	})

	t.Run("unconfigured pack without bill of materials", func(t *testing.T) {
		report := Reconcile(Snapshot{"SG EQ UNIV EST": 3}, catalog, BillOfMaterials{}, Targets{})
		assert.Empty(t, report.IntegrityAlerts)
		assert.Empty(t, report.ReplenishmentAlerts)
		assert.Equal(t, 3, report.PackStock[0].Current)
	})

	t.Run("non-pack garments emit no rows", func(t *testing.T) {
		report := Reconcile(Snapshot{"RFID Campo Chico": 40}, catalog, bom, Targets{})
		assert.Len(t, report.PackStock, 1)
	})
}

func TestReconcile_Idempotent(t *testing.T) {
	catalog, bom := universalCatalog()
	targets := Targets{1: 30}
	snapshot := Snapshot{
		"SG EQ UNIV EST":    12,
		"RFID Campo Chico":  40,
		"RFID Campo Grande": 60,
	}

	first := Reconcile(snapshot, catalog, bom, targets)
	second := Reconcile(snapshot, catalog, bom, targets)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestComponentTargets(t *testing.T) {
	catalog, bom := universalCatalog()

	got := ComponentTargets(catalog, bom, Targets{1: 30})
	assert.Equal(t, map[string]int{
		"RFID Campo Chico":  120,
		"RFID Campo Grande": 180,
	}, got)

	// No target configured means zero expansion, not an error.
	got = ComponentTargets(catalog, bom, Targets{})
	assert.Equal(t, map[string]int{
		"RFID Campo Chico":  0,
		"RFID Campo Grande": 0,
	}, got)
}

func TestComponentTargets_SharedComponent(t *testing.T) {
	catalog := []Garment{
		{ID: 1, Name: "P1", PackIdentifier: true},
		{ID: 2, Name: "P2", PackIdentifier: true},
		{ID: 3, Name: "C"},
	}
	bom := BillOfMaterials{
		1: {{Name: "C", Quantity: 2}},
		2: {{Name: "C", Quantity: 3}},
	}

	got := ComponentTargets(catalog, bom, Targets{1: 10, 2: 10})
	assert.Equal(t, map[string]int{"C": 50}, got)
}

func TestFilterComposition(t *testing.T) {
	counts := Snapshot{"Gown": 5, "Mystery": 2}
	got := FilterComposition(counts, NameSet{"Gown": {}})
	assert.Equal(t, Snapshot{"Gown": 5}, got)
}
