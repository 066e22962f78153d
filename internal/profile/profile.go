// Package profile computes the read-only views of a frame: the headline
// summary, the preview rows, per-column details and descriptive statistics.
package profile

import (
	"github.com/JonMunkholm/datazen/internal/frame"
)

// PreviewRows is the number of rows shown in the preview table.
const PreviewRows = 10

// Summary is the headline metrics row.
type Summary struct {
	Rows    int `json:"rows"`
	Cols    int `json:"cols"`
	Missing int `json:"missing"`
}

// ColumnInfo describes one column.
type ColumnInfo struct {
	Name    string `json:"name"`
	Kind    string `json:"dtype"`
	Missing int    `json:"missing"`
	Unique  int    `json:"unique"`
}

// Table is a rendered grid of text cells.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Summarize reports row, column and missing-cell counts.
func Summarize(f *frame.Frame) Summary {
	rows, cols := f.Shape()
	return Summary{Rows: rows, Cols: cols, Missing: f.MissingCount()}
}

// Preview renders the first n rows. Missing cells render as empty text.
// Column formatting is decided over the whole column, so a datetime column
// keeps the same layout in the preview as in the export.
func Preview(f *frame.Frame, n int) Table {
	if n <= 0 {
		n = PreviewRows
	}
	if n > f.Rows() {
		n = f.Rows()
	}

	cols := f.Columns()
	formatters := make([]func(frame.Cell) string, len(cols))
	for j, col := range cols {
		formatters[j] = col.Formatter()
	}

	t := Table{Header: f.Names(), Rows: make([][]string, n)}
	for i := 0; i < n; i++ {
		rec := make([]string, len(cols))
		for j, col := range cols {
			rec[j] = formatters[j](col.Cells[i])
		}
		t.Rows[i] = rec
	}
	return t
}

// Columns returns dtype, missing count and distinct count per column.
// Missing values do not count as a distinct value.
func Columns(f *frame.Frame) []ColumnInfo {
	cols := f.Columns()
	out := make([]ColumnInfo, len(cols))
	for j, col := range cols {
		distinct := make(map[string]struct{})
		for _, cell := range col.Cells {
			if cell.Valid {
				distinct[cell.Key(col.Kind)] = struct{}{}
			}
		}
		out[j] = ColumnInfo{
			Name:    col.Name,
			Kind:    col.Kind.String(),
			Missing: col.Missing(),
			Unique:  len(distinct),
		}
	}
	return out
}
