// Package chart renders bar, line and scatter charts of a working table as SVG.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/JonMunkholm/datazen/internal/frame"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	ErrTooFewColumns  = errors.New("at least two columns are required to draw a chart")
	ErrColumnNotFound = errors.New("column not found")
	ErrNonNumericAxis = errors.New("y axis column must be numeric")
	ErrNoData         = errors.New("no rows with both x and y values")
	ErrTooManyBars    = errors.New("too many distinct x values for a bar chart")
	ErrUnknownKind    = errors.New("unknown chart type")
)

// MaxBars caps the number of distinct labels a bar chart draws.
const MaxBars = 100

// maxTicks caps the number of labelled ticks on a categorical x axis.
const maxTicks = 20

// Kind is the chart type.
type Kind string

const (
	Bar     Kind = "bar"
	Line    Kind = "line"
	Scatter Kind = "scatter"
)

// Kinds returns the chart types in the order the UI offers them.
func Kinds() []Kind { return []Kind{Bar, Line, Scatter} }

// ParseKind validates a chart type name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == strings.ToLower(s) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Spec selects what to draw.
type Spec struct {
	Kind Kind
	X    string
	Y    string
}

// Options controls the rendered image.
type Options struct {
	Width  int
	Height int
	Title  string
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 900
	}
	if o.Height <= 0 {
		o.Height = 480
	}
	return o
}

// Validate checks that spec can be drawn from f.
func Validate(f *frame.Frame, spec Spec) error {
	if f.Cols() < 2 {
		return ErrTooFewColumns
	}
	if _, err := ParseKind(string(spec.Kind)); err != nil {
		return err
	}
	if _, ok := f.Column(spec.X); !ok {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, spec.X)
	}
	y, ok := f.Column(spec.Y)
	if !ok {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, spec.Y)
	}
	if !y.Kind.Numeric() {
		return fmt.Errorf("%w: %q is %s", ErrNonNumericAxis, spec.Y, y.Kind)
	}
	return nil
}

// point is one plottable row.
type point struct {
	x frame.Cell
	y float64
}

func points(x, y *frame.Column) []point {
	out := make([]point, 0, len(x.Cells))
	for i := range x.Cells {
		if !x.Cells[i].Valid || !y.Cells[i].Valid {
			continue
		}
		out = append(out, point{x: x.Cells[i], y: y.Cells[i].Num})
	}
	return out
}

// Render draws exactly one SVG chart of the current table to w.
func Render(w io.Writer, f *frame.Frame, spec Spec, opts Options) error {
	if err := Validate(f, spec); err != nil {
		return err
	}
	opts = opts.withDefaults()
	if opts.Title == "" {
		opts.Title = fmt.Sprintf("%s / %s", spec.Y, spec.X)
	}

	xcol, _ := f.Column(spec.X)
	ycol, _ := f.Column(spec.Y)
	pts := points(xcol, ycol)
	if len(pts) == 0 {
		return ErrNoData
	}

	if spec.Kind == Bar {
		return renderBars(w, xcol, pts, spec, opts)
	}
	return renderSeries(w, xcol, pts, spec, opts)
}

func renderBars(w io.Writer, xcol *frame.Column, pts []point, spec Spec, opts Options) error {
	format := xcol.Formatter()
	sums := make(map[string]float64)
	var labels []string
	for _, p := range pts {
		label := format(p.x)
		if _, ok := sums[label]; !ok {
			labels = append(labels, label)
		}
		sums[label] += p.y
	}
	if len(labels) > MaxBars {
		return fmt.Errorf("%w: %d > %d", ErrTooManyBars, len(labels), MaxBars)
	}

	bars := make([]gochart.Value, len(labels))
	ys := make([]float64, len(labels))
	for i, label := range labels {
		bars[i] = gochart.Value{Label: label, Value: sums[label]}
		ys[i] = sums[label]
	}

	lo, hi := paddedRange(ys, true)
	bc := gochart.BarChart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 12, Bottom: 28}},
		BarWidth:   barWidth(opts.Width, len(bars)),
		YAxis:      gochart.YAxis{Name: spec.Y, Range: &gochart.ContinuousRange{Min: lo, Max: hi}},
		Bars:       bars,
	}
	return bc.Render(gochart.SVG, w)
}

func barWidth(width, n int) int {
	bw := (width - 80) / (n * 2)
	return max(4, min(bw, 60))
}

func renderSeries(w io.Writer, xcol *frame.Column, pts []point, spec Spec, opts Options) error {
	style := gochart.Style{StrokeWidth: 2, StrokeColor: gochart.ColorBlue}
	if spec.Kind == Scatter {
		style = pointStyle(gochart.ColorBlue)
	}

	ys := make([]float64, len(pts))
	for i, p := range pts {
		ys[i] = p.y
	}
	ylo, yhi := paddedRange(ys, false)

	ch := gochart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 12, Bottom: 48}},
		YAxis:      gochart.YAxis{Name: spec.Y, Range: &gochart.ContinuousRange{Min: ylo, Max: yhi}},
	}

	switch xcol.Kind {
	case frame.KindInt, frame.KindFloat:
		xs := make([]float64, len(pts))
		for i, p := range pts {
			xs[i] = p.x.Num
		}
		xlo, xhi := paddedRange(xs, false)
		ch.XAxis = gochart.XAxis{Name: spec.X, Range: &gochart.ContinuousRange{Min: xlo, Max: xhi}}
		ch.Series = []gochart.Series{gochart.ContinuousSeries{Name: spec.Y, XValues: xs, YValues: ys, Style: style}}

	case frame.KindDatetime:
		times := make([]time.Time, len(pts))
		nanos := make([]float64, len(pts))
		for i, p := range pts {
			times[i] = p.x.Time
			nanos[i] = float64(p.x.Time.UnixNano())
		}
		xlo, xhi := paddedRange(nanos, false)
		if allEqual(nanos) {
			// A single instant is widened to one hour either side.
			xlo, xhi = nanos[0]-float64(time.Hour), nanos[0]+float64(time.Hour)
		}
		ch.XAxis = gochart.XAxis{
			Name:           spec.X,
			Range:          &gochart.ContinuousRange{Min: xlo, Max: xhi},
			ValueFormatter: gochart.TimeValueFormatter,
		}
		ch.Series = []gochart.Series{gochart.TimeSeries{Name: spec.Y, XValues: times, YValues: ys, Style: style}}

	default:
		format := xcol.Formatter()
		xs := make([]float64, len(pts))
		labels := make([]string, len(pts))
		for i, p := range pts {
			xs[i] = float64(i)
			labels[i] = format(p.x)
		}
		xlo, xhi := paddedRange(xs, false)
		ch.XAxis = gochart.XAxis{
			Name:  spec.X,
			Range: &gochart.ContinuousRange{Min: xlo, Max: xhi},
			Ticks: categoryTicks(labels),
		}
		ch.Series = []gochart.Series{gochart.ContinuousSeries{Name: spec.Y, XValues: xs, YValues: ys, Style: style}}
	}

	// Series need at least two points to compute their bounds.
	ch.Series[0] = padSingle(ch.Series[0])
	return ch.Render(gochart.SVG, w)
}

// pointStyle renders points only, without connecting lines.
func pointStyle(col drawing.Color) gochart.Style {
	return gochart.Style{
		StrokeWidth: 0,
		StrokeColor: drawing.ColorTransparent,
		DotWidth:    4,
		DotColor:    col,
	}
}

// padSingle duplicates a lone point so the series has two values.
func padSingle(s gochart.Series) gochart.Series {
	switch ss := s.(type) {
	case gochart.ContinuousSeries:
		if len(ss.XValues) == 1 {
			ss.XValues = []float64{ss.XValues[0], ss.XValues[0]}
			ss.YValues = []float64{ss.YValues[0], ss.YValues[0]}
		}
		return ss
	case gochart.TimeSeries:
		if len(ss.XValues) == 1 {
			ss.XValues = []time.Time{ss.XValues[0], ss.XValues[0]}
			ss.YValues = []float64{ss.YValues[0], ss.YValues[0]}
		}
		return ss
	}
	return s
}

// paddedRange returns bounds covering values with a non-zero span. When
// fromZero is set the range always includes zero, as bars grow from it.
func paddedRange(values []float64, fromZero bool) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 1) {
		return 0, 1
	}
	if fromZero {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, 0)
	}
	if hi == lo {
		return lo - 1, hi + 1
	}
	pad := (hi - lo) * 0.05
	if fromZero && lo == 0 {
		return 0, hi + pad
	}
	return lo - pad, hi + pad
}

func allEqual(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

// categoryTicks labels positional x values, thinning labels on long axes.
func categoryTicks(labels []string) []gochart.Tick {
	step := 1
	if len(labels) > maxTicks {
		step = (len(labels) + maxTicks - 1) / maxTicks
	}
	ticks := make([]gochart.Tick, 0, len(labels)/step+1)
	for i := 0; i < len(labels); i += step {
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: labels[i]})
	}
	return ticks
}
