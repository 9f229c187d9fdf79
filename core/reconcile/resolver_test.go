package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTagMapping(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want TagMapping
	}{
		{
			name: "basic mapping uses fields 0 and 2",
			rows: [][]string{
				{"E1", "12345", "RFID Campo Chico"},
				{"E2", "12346", "RFID Campo Grande"},
			},
			want: TagMapping{
				"E1": "RFID Campo Chico",
				"E2": "RFID Campo Grande",
			},
		},
		{
			name: "last occurrence wins on duplicates",
			rows: [][]string{
				{"E1", "x", "Gown"},
				{"E1", "y", "Robe"},
			},
			want: TagMapping{"E1": "Robe"},
		},
		{
			name: "header row skipped",
			rows: [][]string{
				{"epc", "codigo_barra", "numero_de_articulo"},
				{"E1", "x", "Gown"},
			},
			want: TagMapping{"E1": "Gown"},
		},
		{
			name: "short and empty rows skipped",
			rows: [][]string{
				{"E1", "x"},
				{"", "x", "Gown"},
				{"E2", "x", ""},
				{"E3", "x", "Robe"},
			},
			want: TagMapping{"E3": "Robe"},
		},
		{
			name: "empty input",
			rows: nil,
			want: TagMapping{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildTagMapping(tt.rows))
		})
	}
}

func TestTagMapping_Resolve(t *testing.T) {
	m := TagMapping{"E1": "Gown"}

	name, ok := m.Resolve("E1")
	assert.True(t, ok)
	assert.Equal(t, "Gown", name)

	_, ok = m.Resolve("E9")
	assert.False(t, ok)
}
