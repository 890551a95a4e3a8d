// Package dataset loads the tabular economy dataset shown by the dashboard.
package dataset

import (
	"strconv"
	"strings"
)

// Table is a header row plus string cells, as read from CSV or XLSX
type Table struct {
	Source  string
	Headers []string
	Rows    [][]string
}

// Empty returns a table with no columns and no rows
func Empty() *Table {
	return &Table{}
}

// Len returns the number of data rows
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// IsEmpty reports whether the table has no data rows
func (t *Table) IsEmpty() bool {
	return t.Len() == 0
}

// ColumnIndex returns the position of a header, or -1
func (t *Table) ColumnIndex(name string) int {
	if t == nil {
		return -1
	}
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns the raw cells of a column; short rows yield ""
func (t *Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			values[i] = row[idx]
		}
	}
	return values
}

// NumericColumn returns the parseable numeric cells of a column, skipping blanks
func (t *Table) NumericColumn(name string) []float64 {
	cells := t.Column(name)
	values := make([]float64, 0, len(cells))
	for _, cell := range cells {
		if v, ok := ParseNumber(cell); ok {
			values = append(values, v)
		}
	}
	return values
}

// Record returns row i keyed by header
func (t *Table) Record(i int) map[string]string {
	record := make(map[string]string, len(t.Headers))
	row := t.Rows[i]
	for j, h := range t.Headers {
		if j < len(row) {
			record[h] = row[j]
		}
	}
	return record
}

// ParseNumber parses a cell as float64, accepting thousands separators
func ParseNumber(cell string) (float64, bool) {
	cell = strings.TrimSpace(strings.ReplaceAll(cell, ",", ""))
	if cell == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
