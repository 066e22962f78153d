package chart

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/JonMunkholm/datazen/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFrame(t *testing.T, header []string, rows [][]string) *frame.Frame {
	t.Helper()
	f, err := frame.FromRecords(header, rows)
	require.NoError(t, err)
	return f
}

func sample(t *testing.T) *frame.Frame {
	return mustFrame(t, []string{"city", "sales", "day", "n"}, [][]string{
		{"Oslo", "10", "2024-01-01", "1"},
		{"Rome", "12.5", "2024-01-02", "2"},
		{"Oslo", "7", "2024-01-03", "3"},
		{"Lima", "", "2024-01-04", "4"},
	})
}

func TestValidate(t *testing.T) {
	f := sample(t)

	tests := []struct {
		name string
		spec Spec
		want error
	}{
		{"ok", Spec{Kind: Bar, X: "city", Y: "sales"}, nil},
		{"unknown x", Spec{Kind: Bar, X: "nope", Y: "sales"}, ErrColumnNotFound},
		{"unknown y", Spec{Kind: Line, X: "city", Y: "nope"}, ErrColumnNotFound},
		{"text y", Spec{Kind: Scatter, X: "sales", Y: "city"}, ErrNonNumericAxis},
		{"bad kind", Spec{Kind: "pie", X: "city", Y: "sales"}, ErrUnknownKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(f, tt.spec)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_SingleColumn(t *testing.T) {
	f := mustFrame(t, []string{"only"}, [][]string{{"1"}, {"2"}})
	assert.ErrorIs(t, Validate(f, Spec{Kind: Bar, X: "only", Y: "only"}), ErrTooFewColumns)
}

func TestRender_SVG(t *testing.T) {
	f := sample(t)

	specs := []Spec{
		{Kind: Bar, X: "city", Y: "sales"},
		{Kind: Line, X: "n", Y: "sales"},
		{Kind: Scatter, X: "n", Y: "sales"},
		{Kind: Line, X: "day", Y: "sales"},
		{Kind: Scatter, X: "city", Y: "n"},
	}
	for _, spec := range specs {
		t.Run(fmt.Sprintf("%s_%s", spec.Kind, spec.X), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, f, spec, Options{}))
			assert.Contains(t, buf.String(), "<svg")
		})
	}
}

func TestRender_SinglePoint(t *testing.T) {
	f := mustFrame(t, []string{"x", "y"}, [][]string{{"1", "5"}})

	for _, k := range Kinds() {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, f, Spec{Kind: k, X: "x", Y: "y"}, Options{}), k)
	}
}

func TestRender_NoData(t *testing.T) {
	f := mustFrame(t, []string{"x", "y"}, [][]string{{"a", ""}, {"", "2"}, {"b", "3"}})
	// Column y has a missing cell so it is float; only the last row is complete.
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, f, Spec{Kind: Bar, X: "x", Y: "y"}, Options{}))

	empty := mustFrame(t, []string{"x", "y"}, [][]string{{"a", ""}, {"", "2"}})
	assert.ErrorIs(t, Render(&buf, empty, Spec{Kind: Bar, X: "x", Y: "y"}, Options{}), ErrNoData)
}

func TestRender_TooManyBars(t *testing.T) {
	rows := make([][]string, MaxBars+1)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("label-%d", i), "1"}
	}
	f := mustFrame(t, []string{"x", "y"}, rows)

	var buf bytes.Buffer
	assert.ErrorIs(t, Render(&buf, f, Spec{Kind: Bar, X: "x", Y: "y"}, Options{}), ErrTooManyBars)
}

func TestPaddedRange(t *testing.T) {
	lo, hi := paddedRange([]float64{3, 3}, false)
	assert.Equal(t, 2.0, lo)
	assert.Equal(t, 4.0, hi)

	lo, hi = paddedRange([]float64{5, 10}, true)
	assert.Equal(t, 0.0, lo)
	assert.Greater(t, hi, 10.0)
}

func TestCategoryTicks_Thinned(t *testing.T) {
	labels := make([]string, 100)
	for i := range labels {
		labels[i] = fmt.Sprint(i)
	}
	ticks := categoryTicks(labels)
	assert.LessOrEqual(t, len(ticks), maxTicks)
	assert.Equal(t, "0", ticks[0].Label)
}
