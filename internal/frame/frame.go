// Package frame holds the in-memory tabular value a session works on.
//
// A Frame is an ordered set of named columns of equal length. Each column
// carries an inferred Kind and a slice of Cells; a Cell with Valid=false is a
// missing value. Frames are treated as immutable by callers: cleaning
// operations build a new Frame and the session swaps it in.
package frame

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrRaggedColumns is returned when columns passed to New differ in length.
var ErrRaggedColumns = errors.New("columns have unequal row counts")

// Column is one named, typed column.
type Column struct {
	Name  string
	Kind  Kind
	Cells []Cell
}

// Missing returns the number of missing cells in the column.
func (c *Column) Missing() int {
	n := 0
	for _, cell := range c.Cells {
		if !cell.Valid {
			n++
		}
	}
	return n
}

// Floats returns the numeric values of the valid cells, skipping missing ones.
func (c *Column) Floats() []float64 {
	out := make([]float64, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if cell.Valid {
			out = append(out, cell.Num)
		}
	}
	return out
}

// Frame is the working table.
type Frame struct {
	columns []*Column
	rows    int
}

// New builds a frame from columns. All columns must have the same length.
func New(columns []*Column) (*Frame, error) {
	f := &Frame{columns: columns}
	for i, col := range columns {
		if i == 0 {
			f.rows = len(col.Cells)
			continue
		}
		if len(col.Cells) != f.rows {
			return nil, fmt.Errorf("%w: %q has %d, %q has %d",
				ErrRaggedColumns, columns[0].Name, f.rows, col.Name, len(col.Cells))
		}
	}
	return f, nil
}

// Rows returns the number of rows.
func (f *Frame) Rows() int { return f.rows }

// Cols returns the number of columns.
func (f *Frame) Cols() int { return len(f.columns) }

// Shape returns (rows, cols).
func (f *Frame) Shape() (int, int) { return f.rows, len(f.columns) }

// Columns returns the columns in order. Callers must not mutate them.
func (f *Frame) Columns() []*Column { return f.columns }

// Names returns the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.columns))
	for i, col := range f.columns {
		names[i] = col.Name
	}
	return names
}

// Column looks up a column by exact name.
func (f *Frame) Column(name string) (*Column, bool) {
	for _, col := range f.columns {
		if col.Name == name {
			return col, true
		}
	}
	return nil, false
}

// MissingCount returns the total number of missing cells.
func (f *Frame) MissingCount() int {
	n := 0
	for _, col := range f.columns {
		n += col.Missing()
	}
	return n
}

// Select returns a frame holding the given rows, in the given order.
// Column kinds are preserved.
func (f *Frame) Select(rows []int) *Frame {
	cols := make([]*Column, len(f.columns))
	for j, col := range f.columns {
		cells := make([]Cell, len(rows))
		for i, r := range rows {
			cells[i] = col.Cells[r]
		}
		cols[j] = &Column{Name: col.Name, Kind: col.Kind, Cells: cells}
	}
	return &Frame{columns: cols, rows: len(rows)}
}

// WithColumn returns a shallow copy of the frame with column j replaced.
func (f *Frame) WithColumn(j int, col *Column) *Frame {
	cols := make([]*Column, len(f.columns))
	copy(cols, f.columns)
	cols[j] = col
	return &Frame{columns: cols, rows: f.rows}
}

// Records renders the frame as a header plus rows of canonical text.
// Missing cells become the empty string.
func (f *Frame) Records() (header []string, rows [][]string) {
	header = f.Names()
	formatters := make([]func(Cell) string, len(f.columns))
	for j, col := range f.columns {
		formatters[j] = col.Formatter()
	}

	rows = make([][]string, f.rows)
	for i := 0; i < f.rows; i++ {
		rec := make([]string, len(f.columns))
		for j, col := range f.columns {
			rec[j] = formatters[j](col.Cells[i])
		}
		rows[i] = rec
	}
	return header, rows
}

// RowKey builds a comparable key for row i where missing equals missing.
// Each valid field is length-prefixed so no cell text can collide with a
// field boundary or with a missing cell.
func (f *Frame) RowKey(i int) string {
	var b strings.Builder
	for _, col := range f.columns {
		cell := col.Cells[i]
		if !cell.Valid {
			b.WriteString("-;")
			continue
		}
		k := cell.key(col.Kind)
		b.WriteString(strconv.Itoa(len(k)))
		b.WriteByte(':')
		b.WriteString(k)
	}
	return b.String()
}
