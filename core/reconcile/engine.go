package reconcile

// Reconcile computes pack stock rows and both alert sets for one count
// snapshot (global, or one location).
//
// For every catalog garment flagged as a pack identifier it checks the
// snapshot twice: once against the current pack count (integrity — is what is
// assembled right now trustworthy?) and once against the configured target
// (replenishment — can we reach target from on-hand components?). A
// replenishment alert is only raised while there is an actual deficit; packs
// already at or above target never alert, however short their components are
// of the theoretical target expansion.
//
// The function is pure and deterministic: output order follows catalog order,
// and identical inputs produce identical reports. Callers run it once per
// scope; scopes share nothing.
func Reconcile(snapshot Snapshot, catalog []Garment, bom BillOfMaterials, targets Targets) Report {
	report := Report{
		PackStock:           []StockRow{},
		IntegrityAlerts:     []IntegrityAlert{},
		ReplenishmentAlerts: []ReplenishmentAlert{},
	}

	for _, g := range catalog {
		if !g.PackIdentifier {
			continue
		}

		current := snapshot[g.Name]
		target := targets[g.ID]
		deficit := target - current
		if deficit < 0 {
			deficit = 0
		}
		components := bom[g.ID]

		if missing := shortfalls(components, snapshot, current); len(missing) > 0 {
			report.IntegrityAlerts = append(report.IntegrityAlerts, IntegrityAlert{
				PackName:          g.Name,
				PackCount:         current,
				TargetQty:         target,
				MissingComponents: missing,
			})
		}

		if missing := shortfalls(components, snapshot, target); len(missing) > 0 && deficit > 0 {
			report.ReplenishmentAlerts = append(report.ReplenishmentAlerts, ReplenishmentAlert{
				PackID:            g.ID,
				PackName:          g.Name,
				PackCount:         current,
				TargetQty:         target,
				MissingPacks:      deficit,
				MissingComponents: missing,
			})
		}

		report.PackStock = append(report.PackStock, StockRow{
			PackID:   g.ID,
			Name:     g.Name,
			Current:  current,
			Consumed: deficit,
			Target:   target,
			Delta:    current - target,
		})
	}

	return report
}

// shortfalls expands the component lines for the given number of packs and
// returns one line per component whose availability falls short.
func shortfalls(components []Component, snapshot Snapshot, packs int) []MissingComponent {
	var missing []MissingComponent
	for _, c := range components {
		required := packs * c.Quantity
		available := snapshot[c.Name]
		if available < required {
			missing = append(missing, MissingComponent{
				Name:      c.Name,
				Required:  required,
				Available: available,
				Missing:   required - available,
			})
		}
	}
	return missing
}

// ComponentTargets expands each pack's target quantity through its bill of
// materials, yielding the aggregate per-component target counts.
func ComponentTargets(catalog []Garment, bom BillOfMaterials, targets Targets) map[string]int {
	out := make(map[string]int)
	for _, g := range catalog {
		if !g.PackIdentifier {
			continue
		}
		target := targets[g.ID]
		for _, c := range bom[g.ID] {
			out[c.Name] += target * c.Quantity
		}
	}
	return out
}

// FilterComposition keeps only the counts of garments present in the catalog,
// dropping noise from tags that resolve to untracked articles.
func FilterComposition(counts Snapshot, catalog NameSet) Snapshot {
	out := make(Snapshot, len(counts))
	for name, n := range counts {
		if _, ok := catalog[name]; ok {
			out[name] = n
		}
	}
	return out
}
