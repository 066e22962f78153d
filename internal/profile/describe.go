package profile

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/JonMunkholm/datazen/internal/frame"
	"github.com/montanaflynn/stats"
)

// ErrNoNumericColumns is returned by Describe when no column is int or float.
var ErrNoNumericColumns = errors.New("no numeric columns to describe")

// StatNames are the rows of a numeric description, in display order.
var StatNames = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

// Number is a statistic value. NaN marks an undefined statistic and encodes
// as JSON null.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// Description holds summary statistics for the numeric columns.
// Values is indexed [stat][column].
type Description struct {
	Stats   []string   `json:"stats"`
	Columns []string   `json:"columns"`
	Values  [][]Number `json:"values"`
}

// Describe computes count, mean, sample standard deviation, min, quartiles
// and max for every int and float column, ignoring missing cells.
func Describe(f *frame.Frame) (*Description, error) {
	d := &Description{Stats: StatNames}
	var columns [][]Number

	for _, col := range f.Columns() {
		if !col.Kind.Numeric() {
			continue
		}
		d.Columns = append(d.Columns, col.Name)
		columns = append(columns, describeColumn(col.Floats()))
	}
	if len(d.Columns) == 0 {
		return nil, ErrNoNumericColumns
	}

	d.Values = make([][]Number, len(StatNames))
	for s := range StatNames {
		d.Values[s] = make([]Number, len(columns))
		for c := range columns {
			d.Values[s][c] = columns[c][s]
		}
	}
	return d, nil
}

// describeColumn returns the statistics in StatNames order.
func describeColumn(data []float64) []Number {
	nan := Number(math.NaN())
	out := []Number{Number(len(data)), nan, nan, nan, nan, nan, nan, nan}
	if len(data) == 0 {
		return out
	}

	if mean, err := stats.Mean(data); err == nil {
		out[1] = Number(mean)
	}
	if len(data) > 1 {
		if sd, err := stats.StandardDeviationSample(data); err == nil {
			out[2] = Number(sd)
		}
	}
	if lo, err := stats.Min(data); err == nil {
		out[3] = Number(lo)
	}
	if hi, err := stats.Max(data); err == nil {
		out[7] = Number(hi)
	}

	sorted := slices.Clone(data)
	slices.Sort(sorted)
	out[4] = Number(quantile(sorted, 0.25))
	out[5] = Number(quantile(sorted, 0.50))
	out[6] = Number(quantile(sorted, 0.75))
	return out
}

// quantile interpolates linearly between the closest ranks of sorted data:
// position p*(n-1), fractional part weighting the upper neighbour.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// Table renders the description for display with six decimals.
func (d *Description) Table() Table {
	t := Table{Header: append([]string{""}, d.Columns...)}
	for s, name := range d.Stats {
		row := make([]string, 0, len(d.Columns)+1)
		row = append(row, name)
		for _, v := range d.Values[s] {
			row = append(row, formatStat(float64(v)))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.6f", v)
}

// DescribeObjects summarises every column as text: count of present values,
// distinct values, the most frequent value and its frequency. Ties for the
// most frequent value go to the one seen first.
func DescribeObjects(f *frame.Frame) Table {
	cols := f.Columns()
	t := Table{Header: append([]string{""}, f.Names()...)}
	count := []string{"count"}
	unique := []string{"unique"}
	top := []string{"top"}
	freq := []string{"freq"}

	for _, col := range cols {
		format := col.Formatter()
		counts := make(map[string]int)
		var order []string
		present := 0
		for _, cell := range col.Cells {
			if !cell.Valid {
				continue
			}
			present++
			text := format(cell)
			if counts[text] == 0 {
				order = append(order, text)
			}
			counts[text]++
		}

		best, bestN := "", 0
		for _, v := range order {
			if counts[v] > bestN {
				best, bestN = v, counts[v]
			}
		}

		count = append(count, strconv.Itoa(present))
		unique = append(unique, strconv.Itoa(len(order)))
		if bestN == 0 {
			top = append(top, "NaN")
			freq = append(freq, "NaN")
			continue
		}
		top = append(top, best)
		freq = append(freq, strconv.Itoa(bestN))
	}

	t.Rows = [][]string{count, unique, top, freq}
	return t
}
