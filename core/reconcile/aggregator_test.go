package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateStock(t *testing.T) {
	mapping := TagMapping{"E1": "Gown", "E2": "Robe"}

	t.Run("unresolved rows count nothing", func(t *testing.T) {
		rows := [][]string{
			{"c", "u", "E1"},
			{"c", "u", "unknown"},
		}
		agg := AggregateStock(rows, mapping)
		assert.Equal(t, Snapshot{"Gown": 1}, agg.Counts)
		assert.Equal(t, 1, agg.Seen)
		assert.Equal(t, 1, agg.Unresolved)
	})

	t.Run("header and sentinel rows skipped silently", func(t *testing.T) {
		rows := [][]string{
			{"codigoCAB", "codigoUsuario", "codigoRFID"},
			{"c", "u", "----------"},
			{"c", "u", ""},
			{"c", "u"},
			{"c", "u", "E1"},
			{"c", "u", "E1"},
			{"c", "u", "E2"},
		}
		agg := AggregateStock(rows, mapping)
		assert.Equal(t, Snapshot{"Gown": 2, "Robe": 1}, agg.Counts)
		assert.Equal(t, 3, agg.Seen)
		assert.Zero(t, agg.Unresolved)
	})

	t.Run("empty input", func(t *testing.T) {
		agg := AggregateStock(nil, mapping)
		assert.Empty(t, agg.Counts)
		assert.Zero(t, agg.Seen)
	})
}

func TestAggregateConsumption(t *testing.T) {
	mapping := TagMapping{"E1": "Gown", "E2": "Robe", "E3": "Towel"}
	catalog := NameSet{"Gown": {}, "Robe": {}}

	t.Run("only catalog garments are counted", func(t *testing.T) {
		rows := [][]string{
			{"E1", "20240115 08:30:00"},
			{"E3", "20240115 09:00:00"}, // resolves, but Towel is not in the catalog
			{"bogus", "20240115 09:10:00"},
		}
		agg := AggregateConsumption(rows, mapping, catalog)
		assert.Equal(t, Snapshot{"Gown": 1}, agg.Counts)
		assert.Equal(t, 1, agg.Total)
		assert.Equal(t, 1, agg.Unresolved)
	})

	t.Run("day buckets use the date portion of the timestamp", func(t *testing.T) {
		rows := [][]string{
			{"E1", "20240115 08:30:00"},
			{"E1", "20240115 17:45:12"},
			{"E2", "20240116 06:01:00"},
		}
		agg := AggregateConsumption(rows, mapping, catalog)
		assert.Equal(t, Snapshot{"Gown": 2, "Robe": 1}, agg.Counts)
		assert.Equal(t, map[string]Snapshot{
			"20240115": {"Gown": 2},
			"20240116": {"Robe": 1},
		}, agg.ByDay)
	})

	t.Run("timestampless reads hit totals but no day bucket", func(t *testing.T) {
		rows := [][]string{
			{"E1"},
			{"E1", ""},
		}
		agg := AggregateConsumption(rows, mapping, catalog)
		assert.Equal(t, 2, agg.Total)
		assert.Empty(t, agg.ByDay)
	})
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "20240115", dayKey("20240115 08:30:00"))
	assert.Equal(t, "20240115", dayKey("20240115"))
}
