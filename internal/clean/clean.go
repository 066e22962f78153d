// Package clean implements the cleaning actions applied to a working table.
// Every action returns a new frame and leaves its input untouched.
package clean

import (
	"errors"
	"fmt"

	"github.com/JonMunkholm/datazen/internal/frame"
	"gonum.org/v1/gonum/stat"
)

// ErrUnknownAction is returned by Apply and ParseAction for unrecognised actions.
var ErrUnknownAction = errors.New("unknown cleaning action")

// Action names a cleaning operation.
type Action string

const (
	DropMissing    Action = "drop_missing"
	FillMean       Action = "fill_mean"
	DropDuplicates Action = "drop_duplicates"
)

// Actions returns the actions in the order the UI offers them.
func Actions() []Action {
	return []Action{DropMissing, FillMean, DropDuplicates}
}

// ParseAction validates an action name.
func ParseAction(s string) (Action, error) {
	for _, a := range Actions() {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Report describes what an action changed.
type Report struct {
	Action         Action   `json:"action"`
	RowsBefore     int      `json:"rows_before"`
	RowsAfter      int      `json:"rows_after"`
	CellsFilled    int      `json:"cells_filled"`
	SkippedColumns []string `json:"skipped_columns,omitempty"`
}

// RowsRemoved returns how many rows the action dropped.
func (r Report) RowsRemoved() int { return r.RowsBefore - r.RowsAfter }

// Apply runs the named action.
func Apply(f *frame.Frame, a Action) (*frame.Frame, Report, error) {
	switch a {
	case DropMissing:
		out, rep := dropMissing(f)
		return out, rep, nil
	case FillMean:
		out, rep := fillMean(f)
		return out, rep, nil
	case DropDuplicates:
		out, rep := dropDuplicates(f)
		return out, rep, nil
	default:
		return nil, Report{}, fmt.Errorf("%w: %q", ErrUnknownAction, a)
	}
}

func dropMissing(f *frame.Frame) (*frame.Frame, Report) {
	cols := f.Columns()
	keep := make([]int, 0, f.Rows())
	for i := 0; i < f.Rows(); i++ {
		complete := true
		for _, col := range cols {
			if !col.Cells[i].Valid {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, i)
		}
	}

	out := f.Select(keep)
	return out, Report{Action: DropMissing, RowsBefore: f.Rows(), RowsAfter: out.Rows()}
}

func fillMean(f *frame.Frame) (*frame.Frame, Report) {
	rep := Report{Action: FillMean, RowsBefore: f.Rows(), RowsAfter: f.Rows()}
	out := f

	for j, col := range f.Columns() {
		if !col.Kind.Numeric() {
			continue
		}
		missing := col.Missing()
		if missing == 0 {
			continue
		}
		present := col.Floats()
		if len(present) == 0 {
			rep.SkippedColumns = append(rep.SkippedColumns, col.Name)
			continue
		}

		mean := stat.Mean(present, nil)
		cells := make([]frame.Cell, len(col.Cells))
		for i, cell := range col.Cells {
			if cell.Valid {
				cells[i] = cell
				continue
			}
			cells[i] = frame.FloatCell(mean)
		}
		// A filled integer column holds a fractional mean.
		out = out.WithColumn(j, &frame.Column{Name: col.Name, Kind: frame.KindFloat, Cells: cells})
		rep.CellsFilled += missing
	}

	return out, rep
}

func dropDuplicates(f *frame.Frame) (*frame.Frame, Report) {
	seen := make(map[string]struct{}, f.Rows())
	keep := make([]int, 0, f.Rows())
	for i := 0; i < f.Rows(); i++ {
		k := f.RowKey(i)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keep = append(keep, i)
	}

	out := f.Select(keep)
	return out, Report{Action: DropDuplicates, RowsBefore: f.Rows(), RowsAfter: out.Rows()}
}
