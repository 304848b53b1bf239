package dataset

import (
	"strings"
)

// Table is a raw source table. Empty cells are treated as null.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
	index   map[string]int
}

// NewTable creates a table; rows shorter than the header are padded on read
func NewTable(name string, columns []string, rows [][]string) *Table {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		c = strings.TrimSpace(c)
		if _, dup := index[c]; !dup {
			index[c] = i
		}
	}
	return &Table{Name: name, Columns: columns, Rows: rows, index: index}
}

// Len returns the row count; a nil table has none
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Has reports whether the exact column exists
func (t *Table) Has(col string) bool {
	if t == nil {
		return false
	}
	_, ok := t.index[col]
	return ok
}

// FindColumn returns the first candidate present, matching exactly first and
// then ignoring case
func (t *Table) FindColumn(candidates ...string) (string, bool) {
	if t == nil {
		return "", false
	}
	for _, c := range candidates {
		if t.Has(c) {
			return c, true
		}
	}
	for _, c := range candidates {
		for _, name := range t.Columns {
			name = strings.TrimSpace(name)
			if strings.EqualFold(name, c) {
				return name, true
			}
		}
	}
	return "", false
}

// ColumnsContaining lists columns, in header order, whose lowercased name
// contains any of the fragments
func (t *Table) ColumnsContaining(fragments ...string) []string {
	if t == nil {
		return nil
	}
	var cols []string
	for _, c := range t.Columns {
		lc := strings.ToLower(strings.TrimSpace(c))
		for _, f := range fragments {
			if strings.Contains(lc, f) {
				cols = append(cols, strings.TrimSpace(c))
				break
			}
		}
	}
	return cols
}

// Value returns the trimmed cell, or "" when the column or cell is absent
func (t *Table) Value(row int, col string) string {
	if t == nil || row < 0 || row >= len(t.Rows) {
		return ""
	}
	i, ok := t.index[col]
	if !ok || i >= len(t.Rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.Rows[row][i])
}

// Tables groups the four source tables; a nil table was not provided
type Tables struct {
	Projects       *Table
	Addresses      *Table
	Configurations *Table
	Variants       *Table
}
