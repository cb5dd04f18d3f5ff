// Package dataset stages tabular data for dataset-driven charts. Files
// (CSV, XLSX, legacy XLS) and remote tables are imported into a per-source
// SQLite database under the data cache directory; renders read tables back
// out as immutable in-memory values.
package dataset

import (
	"fmt"
	"strconv"
)

// ColumnType is the inferred storage type of a column.
type ColumnType string

const (
	TypeInteger ColumnType = "INTEGER"
	TypeReal    ColumnType = "REAL"
	TypeText    ColumnType = "TEXT"
)

// Column is one typed column of a staged table.
type Column struct {
	Name string
	Type ColumnType
}

// Numeric reports whether the column holds numbers.
func (c Column) Numeric() bool {
	return c.Type == TypeInteger || c.Type == TypeReal
}

// Table is a read-only snapshot of one staged table. Rows hold int64,
// float64, string or nil cells; the render never mutates a loaded table.
type Table struct {
	Name    string
	Columns []Column
	Rows    [][]any
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// HasNulls reports whether any row has a nil cell in the given column.
func (t *Table) HasNulls(col int) bool {
	for _, row := range t.Rows {
		if col >= len(row) || row[col] == nil {
			return true
		}
	}
	return false
}

// Float converts the cell at (row, col) to a float64.
func (t *Table) Float(row, col int) (float64, bool) {
	if row >= len(t.Rows) || col >= len(t.Rows[row]) {
		return 0, false
	}
	switch v := t.Rows[row][col].(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// CellString renders the cell at (row, col) for use as a category label.
func (t *Table) CellString(row, col int) string {
	if row >= len(t.Rows) || col >= len(t.Rows[row]) || t.Rows[row][col] == nil {
		return ""
	}
	switch v := t.Rows[row][col].(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
