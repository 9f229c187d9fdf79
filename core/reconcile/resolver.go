package reconcile

// TagMapping resolves raw RFID identifiers (EPCs) to garment names. It is
// built fresh from each maestro export and lives for one reconciliation pass.
type TagMapping map[string]string

// maestroHeaderLabel is the literal column label the maestro export uses when
// it ships a header row.
const maestroHeaderLabel = "epc"

// BuildTagMapping builds the identifier lookup from maestro rows. The EPC is
// field 0 and the article name is field 2. Short rows, empty keys and the
// header row are skipped without error; duplicate EPCs overwrite, last wins.
func BuildTagMapping(rows [][]string) TagMapping {
	m := make(TagMapping, len(rows))
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		epc, name := row[0], row[2]
		if epc == "" || name == "" || epc == maestroHeaderLabel {
			continue
		}
		m[epc] = name
	}
	return m
}

// Resolve returns the garment name for a raw identifier.
func (m TagMapping) Resolve(epc string) (string, bool) {
	name, ok := m[epc]
	return name, ok
}
