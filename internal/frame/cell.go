package frame

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind is the inferred scalar type of a column.
type Kind int

const (
	KindObject Kind = iota
	KindInt
	KindFloat
	KindBool
	KindDatetime
)

// String returns the dtype-style name shown in column details.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int64"
	case KindFloat:
		return "float64"
	case KindBool:
		return "bool"
	case KindDatetime:
		return "datetime64[ns]"
	default:
		return "object"
	}
}

// Numeric reports whether the kind takes part in numeric statistics.
// Booleans do not.
func (k Kind) Numeric() bool {
	return k == KindInt || k == KindFloat
}

// Cell is a single value. Valid=false marks a missing value.
type Cell struct {
	Valid bool
	Text  string    // source text, verbatim for object cells
	Int   int64     // exact value of int cells
	Num   float64   // int (approximate), float and bool (0/1) cells
	Time  time.Time // datetime cells
}

// Missing is the zero Cell.
var Missing = Cell{}

// FloatCell builds a valid float cell.
func FloatCell(v float64) Cell {
	return Cell{Valid: true, Num: v, Text: FormatFloat(v)}
}

// IntCell builds a valid integer cell.
func IntCell(v int64) Cell {
	return Cell{Valid: true, Int: v, Num: float64(v), Text: strconv.FormatInt(v, 10)}
}

// TextCell builds a valid object cell.
func TextCell(s string) Cell {
	return Cell{Valid: true, Text: s}
}

// BoolCell builds a valid bool cell.
func BoolCell(b bool) Cell {
	c := Cell{Valid: true, Text: "False"}
	if b {
		c.Num = 1
		c.Text = "True"
	}
	return c
}

// TimeCell builds a valid datetime cell.
func TimeCell(t time.Time) Cell {
	return Cell{Valid: true, Time: t, Text: t.Format(dateTimeLayout)}
}

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// FormatFloat renders a float in shortest round-trip form that always keeps
// a decimal point or an exponent, so integral floats read back as floats.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	abs := math.Abs(v)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// Formatter returns the canonical text renderer for the column's cells.
// Missing cells render as the empty string.
func (c *Column) Formatter() func(Cell) string {
	switch c.Kind {
	case KindInt:
		return func(cell Cell) string {
			if !cell.Valid {
				return ""
			}
			return strconv.FormatInt(cell.Int, 10)
		}
	case KindFloat:
		return func(cell Cell) string {
			if !cell.Valid {
				return ""
			}
			return FormatFloat(cell.Num)
		}
	case KindBool:
		return func(cell Cell) string {
			if !cell.Valid {
				return ""
			}
			if cell.Num != 0 {
				return "True"
			}
			return "False"
		}
	case KindDatetime:
		layout := dateLayout
		for _, cell := range c.Cells {
			if cell.Valid && !isMidnight(cell.Time) {
				layout = dateTimeLayout
				break
			}
		}
		return func(cell Cell) string {
			if !cell.Valid {
				return ""
			}
			return cell.Time.Format(layout)
		}
	default:
		return func(cell Cell) string {
			if !cell.Valid {
				return ""
			}
			return cell.Text
		}
	}
}

func isMidnight(t time.Time) bool {
	h, m, s := t.Clock()
	return h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0
}

// key renders a valid cell for equality comparisons.
func (c Cell) key(kind Kind) string {
	switch kind {
	case KindInt:
		return strconv.FormatInt(c.Int, 10)
	case KindFloat, KindBool:
		return strconv.FormatFloat(c.Num, 'g', -1, 64)
	case KindDatetime:
		return strconv.FormatInt(c.Time.UnixNano(), 10)
	default:
		return c.Text
	}
}

// Key renders a valid cell for equality comparisons within a column of the
// given kind. Two cells with equal keys are equal values.
func (c Cell) Key(kind Kind) string { return c.key(kind) }
