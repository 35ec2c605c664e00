package dataset_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/gridpage/internal/dataset"
)

func TestRow_Cell(t *testing.T) {
	row := dataset.Row{
		"id":     json.Number("7"),
		"name":   "widget",
		"price":  2.5,
		"whole":  float64(3),
		"active": true,
		"qty":    12,
		"none":   nil,
	}

	tests := []struct {
		field string
		want  string
	}{
		{"id", "7"},
		{"name", "widget"},
		{"price", "2.5"},
		{"whole", "3"},
		{"active", "true"},
		{"qty", "12"},
		{"none", ""},
		{"missing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.want, row.Cell(tt.field))
		})
	}
	assert.Equal(t, "7", row.ID())
}

func TestInferColumns(t *testing.T) {
	rows := []dataset.Row{
		{"id": 1, "zeta": "z", "unit_price": 3},
		{"id": 2, "alpha": "a"},
	}

	cols := dataset.InferColumns(rows)

	fields := make([]string, 0, len(cols))
	for _, c := range cols {
		fields = append(fields, c.Field)
	}
	assert.Equal(t, []string{"id", "alpha", "unit_price", "zeta"}, fields)
	assert.Equal(t, "ID", cols[0].Header)
	assert.Equal(t, "Unit Price", cols[2].Header)
	assert.True(t, cols[1].Filterable)
	assert.False(t, cols[0].Filterable)
}

func TestInferColumns_Empty(t *testing.T) {
	assert.Empty(t, dataset.InferColumns(nil))
}

func TestGenerate(t *testing.T) {
	rows := dataset.Generate(23)
	assert.Len(t, rows, 23)
	assert.Equal(t, "1", rows[0].ID())
	assert.Equal(t, "23", rows[22].ID())
	assert.Equal(t, "item-0005", rows[4].Cell("name"))
	assert.Equal(t, rows, dataset.Generate(23), "generation is deterministic")

	assert.Empty(t, dataset.Generate(0))
	assert.Empty(t, dataset.Generate(-3))
}
