// Package dataset loads the rows shown by the gridpage grid.
//
// A dataset is a flat list of Row values, each a string-keyed record that
// carries an "id". Rows come from JSON or YAML files, or from Generate for
// demos, and their Column layout is inferred from the keys present.
package dataset

import (
	"fmt"
	"slices"
	"strconv"
)

// IDField is the key every row must carry.
const IDField = "id"

// Column describes one grid column.
type Column struct {
	Field      string `json:"field"                yaml:"field"`
	Header     string `json:"header"               yaml:"header"`
	Resizable  bool   `json:"resizable,omitempty"  yaml:"resizable,omitempty"`
	Sortable   bool   `json:"sortable,omitempty"   yaml:"sortable,omitempty"`
	Filterable bool   `json:"filterable,omitempty" yaml:"filterable,omitempty"`
	// Width is a fixed width in cells. Zero lets the renderer choose.
	Width int `json:"width,omitempty" yaml:"width,omitempty"`
}

// Row is a single grid record.
type Row map[string]any

// ID returns the row identifier formatted for display.
func (r Row) ID() string {
	return r.Cell(IDField)
}

// Cell returns the value of field formatted for display, or "" when absent.
func (r Row) Cell(field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// InferColumns derives columns from the union of keys across rows. The id
// column comes first, the rest follow in sorted order so the layout does not
// depend on map iteration.
func InferColumns(rows []Row) []Column {
	seen := make(map[string]struct{})
	for _, r := range rows {
		for k := range r {
			seen[k] = struct{}{}
		}
	}

	fields := make([]string, 0, len(seen))
	for k := range seen {
		if k != IDField {
			fields = append(fields, k)
		}
	}
	slices.Sort(fields)

	cols := make([]Column, 0, len(fields)+1)
	if _, ok := seen[IDField]; ok {
		cols = append(cols, Column{Field: IDField, Header: "ID", Sortable: true})
	}
	for _, f := range fields {
		cols = append(cols, Column{
			Field:      f,
			Header:     headerFor(f),
			Resizable:  true,
			Sortable:   true,
			Filterable: true,
		})
	}
	return cols
}

// headerFor turns a field key such as "unit_price" into "Unit Price".
func headerFor(field string) string {
	out := make([]byte, 0, len(field))
	upper := true
	for i := range len(field) {
		c := field[i]
		switch {
		case c == '_' || c == '-':
			out = append(out, ' ')
			upper = true
		case upper && c >= 'a' && c <= 'z':
			out = append(out, c-('a'-'A'))
			upper = false
		default:
			out = append(out, c)
			upper = false
		}
	}
	return string(out)
}
