package clean

import (
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

func records(f *frame.Frame) [][]string {
	_, rows := f.Records()
	return rows
}

func TestFillMean_FiveByThree(t *testing.T) {
	f := mustFrame(t, []string{"name", "score", "city"}, [][]string{
		{"ann", "10", "Oslo"},
		{"bob", "", "Rome"},
		{"cid", "20", "Lima"},
		{"dee", "30", "Oslo"},
		{"eve", "40", "Kyiv"},
	})
	require.Equal(t, 1, f.MissingCount())

	out, rep, err := Apply(f, FillMean)
	require.NoError(t, err)

	assert.Equal(t, 0, out.MissingCount())
	assert.Equal(t, 1, rep.CellsFilled)
	score, ok := out.Column("score")
	require.True(t, ok)
	assert.Equal(t, 25.0, score.Cells[1].Num)
	assert.Equal(t, 1, f.MissingCount(), "input frame must not change")
}

func TestFillMean_NoMissingIsUnchanged(t *testing.T) {
	f := mustFrame(t, []string{"a", "b"}, [][]string{{"1", "x"}, {"2", "y"}})

	out, rep, err := Apply(f, FillMean)
	require.NoError(t, err)
	assert.Equal(t, records(f), records(out))
	assert.Equal(t, frame.KindInt, out.Columns()[0].Kind)
	assert.Zero(t, rep.CellsFilled)
}

func TestFillMean_SkipsAllMissingAndText(t *testing.T) {
	cols := []*frame.Column{
		{Name: "empty", Kind: frame.KindFloat, Cells: []frame.Cell{frame.Missing, frame.Missing}},
		{Name: "label", Kind: frame.KindObject, Cells: []frame.Cell{frame.Missing, frame.TextCell("a")}},
	}
	f, err := frame.New(cols)
	require.NoError(t, err)

	out, rep, err := Apply(f, FillMean)
	require.NoError(t, err)
	assert.Equal(t, []string{"empty"}, rep.SkippedColumns)
	assert.Equal(t, 3, out.MissingCount())
}

func TestDropMissing(t *testing.T) {
	f := mustFrame(t, []string{"a", "b"}, [][]string{
		{"1", "x"},
		{"", "y"},
		{"3", ""},
		{"4", "z"},
	})

	out, rep, err := Apply(f, DropMissing)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1.0", "x"}, {"4.0", "z"}}, records(out))
	assert.Equal(t, 2, rep.RowsRemoved())

	again, rep2, err := Apply(out, DropMissing)
	require.NoError(t, err)
	assert.Equal(t, records(out), records(again))
	assert.Zero(t, rep2.RowsRemoved())
}

func TestDropDuplicates(t *testing.T) {
	f := mustFrame(t, []string{"a", "b"}, [][]string{
		{"1", "x"},
		{"1", "x"},
		{"2", ""},
		{"2", ""},
		{"2", "y"},
	})

	out, rep, err := Apply(f, DropDuplicates)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "x"}, {"2", ""}, {"2", "y"}}, records(out))
	assert.Equal(t, 2, rep.RowsRemoved())

	again, _, err := Apply(out, DropDuplicates)
	require.NoError(t, err)
	assert.Equal(t, records(out), records(again))
}

func TestDropDuplicates_DistinctLargeIntegers(t *testing.T) {
	f := mustFrame(t, []string{"id"}, [][]string{
		{"9007199254740993"},
		{"9007199254740992"},
		{"1234567890123456789"},
	})

	out, rep, err := Apply(f, DropDuplicates)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Rows())
	assert.Equal(t, 0, rep.RowsRemoved())
}

func TestDropDuplicates_SeparatorBytesInText(t *testing.T) {
	f := mustFrame(t, []string{"a", "b"}, [][]string{
		{"x\x1fy", "z"},
		{"x", "y\x1fz"},
	})

	out, _, err := Apply(f, DropDuplicates)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Rows())
}

func TestApply_UnknownAction(t *testing.T) {
	f := mustFrame(t, []string{"a"}, [][]string{{"1"}})

	_, _, err := Apply(f, Action("shuffle"))
	assert.ErrorIs(t, err, ErrUnknownAction)

	_, err = ParseAction("nope")
	assert.ErrorIs(t, err, ErrUnknownAction)

	a, err := ParseAction("fill_mean")
	require.NoError(t, err)
	assert.Equal(t, FillMean, a)
}
