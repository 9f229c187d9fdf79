package reconcile

import "strings"

const (
	// stockHeaderLabel is the literal column label of the EPC field in cabin
	// stock exports.
	stockHeaderLabel = "codigoRFID"

	// noTagSentinel is the placeholder the cabin reader emits for a slot with
	// no tag present.
	noTagSentinel = "----------"
)

// StockAggregate is the result of folding one cabin stock export.
type StockAggregate struct {
	// Counts holds the per-garment counts for this location.
	Counts Snapshot

	// Seen is the number of items actually counted, post-resolution.
	Seen int

	// Unresolved is the number of rows whose identifier did not resolve
	// through the tag mapping. They contribute to no count, but the number
	// stays visible instead of being silently discarded.
	Unresolved int
}

// AggregateStock folds cabin stock rows into per-garment counts. The EPC sits
// at field 2 in this export (the cabin reader lists cabin and user codes
// first). Short rows, empty identifiers, the header label and the no-tag
// placeholder are skipped.
func AggregateStock(rows [][]string, mapping TagMapping) StockAggregate {
	agg := StockAggregate{Counts: Snapshot{}}
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		epc := row[2]
		if epc == "" || epc == stockHeaderLabel || epc == noTagSentinel {
			continue
		}
		name, ok := mapping.Resolve(epc)
		if !ok {
			agg.Unresolved++
			continue
		}
		agg.Counts[name]++
		agg.Seen++
	}
	return agg
}

// ConsumptionAggregate is the result of folding one soiled-zone export.
type ConsumptionAggregate struct {
	// Counts holds the global per-garment consumption counts.
	Counts Snapshot

	// ByDay buckets counts by the calendar day of the read, keyed by the date
	// portion of the reader timestamp.
	ByDay map[string]Snapshot

	// Total is the number of reads counted.
	Total int

	// Unresolved is the number of reads whose identifier did not resolve.
	Unresolved int
}

// AggregateConsumption folds soiled-zone rows into consumption counts. The
// EPC is field 0 and an optional timestamp is field 1. Only reads that
// resolve to a garment present in the catalog are counted; this guards
// against maestro entries unrelated to tracked packs. A read without a
// timestamp contributes to the totals but to no day bucket.
func AggregateConsumption(rows [][]string, mapping TagMapping, catalog NameSet) ConsumptionAggregate {
	agg := ConsumptionAggregate{
		Counts: Snapshot{},
		ByDay:  map[string]Snapshot{},
	}
	for _, row := range rows {
		if len(row) < 1 || row[0] == "" {
			continue
		}
		name, ok := mapping.Resolve(row[0])
		if !ok {
			agg.Unresolved++
			continue
		}
		if _, tracked := catalog[name]; !tracked {
			continue
		}
		agg.Counts[name]++
		agg.Total++

		if len(row) > 1 && row[1] != "" {
			day := dayKey(row[1])
			if agg.ByDay[day] == nil {
				agg.ByDay[day] = Snapshot{}
			}
			agg.ByDay[day][name]++
		}
	}
	return agg
}

// dayKey returns the date portion of a reader timestamp: the text before the
// first space.
func dayKey(timestamp string) string {
	if i := strings.IndexByte(timestamp, ' '); i >= 0 {
		return timestamp[:i]
	}
	return timestamp
}
