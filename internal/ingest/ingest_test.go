package ingest

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDecoderFor(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr bool
	}{
		{"csv", "data.csv", false},
		{"upper-case csv", "DATA.CSV", false},
		{"xlsx", "report.xlsx", false},
		{"legacy xls", "report.xls", true},
		{"json", "data.json", true},
		{"no extension", "data", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec, err := DecoderFor(tt.file)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedType)
				assert.Nil(t, dec)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, dec)
		})
	}
}

func TestSupportedExtensions(t *testing.T) {
	assert.Equal(t, []string{".csv", ".xlsx"}, SupportedExtensions())
}

func TestIngest_CSVShape(t *testing.T) {
	input := "id,name,score\n1,ann,3.5\n2,bob,\n3,cid,4\n"

	f, err := Ingest(context.Background(), "people.csv", strings.NewReader(input), Options{})
	require.NoError(t, err)

	rows, cols := f.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 1, f.MissingCount())
	assert.Equal(t, []string{"id", "name", "score"}, f.Names())
}

func TestIngest_CSVWithBOMAndInvalidUTF8(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("name\nh\x80i\n")...)

	f, err := Ingest(context.Background(), "bom.csv", bytes.NewReader(input), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"name"}, f.Names())
	_, rows := f.Records()
	assert.Equal(t, "h?i", rows[0][0])
}

func TestIngest_CSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantSub string
	}{
		{"empty", "", "empty file"},
		{"too many fields", "a,b\n1,2,3\n", "invalid csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Ingest(context.Background(), "x.csv", strings.NewReader(tt.input), Options{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantSub)
		})
	}
}

func TestIngest_CSVShortRowsPadded(t *testing.T) {
	f, err := Ingest(context.Background(), "x.csv", strings.NewReader("a,b,c\n1,2\n"), Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, f.MissingCount())
}

func TestIngest_SizeLimit(t *testing.T) {
	input := "a\n" + strings.Repeat("1\n", 1000)

	_, err := Ingest(context.Background(), "big.csv", strings.NewReader(input), Options{MaxBytes: 100})
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestIngest_CSVHeaderNormalized(t *testing.T) {
	f, err := Ingest(context.Background(), "h.csv", strings.NewReader("a,,a\n1,2,3\n"), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "Unnamed: 1", "a.1"}, f.Names())
}

func TestIngest_XLSX(t *testing.T) {
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	require.NoError(t, wb.SetSheetRow(sheet, "A1", &[]any{"city", "temp"}))
	require.NoError(t, wb.SetSheetRow(sheet, "A2", &[]any{"Oslo", 3}))
	require.NoError(t, wb.SetSheetRow(sheet, "A3", &[]any{"Rome", 18}))
	require.NoError(t, wb.SetSheetRow(sheet, "A5", &[]any{"Lima", 21}))
	buf, err := wb.WriteToBuffer()
	require.NoError(t, err)

	f, err := Ingest(context.Background(), "cities.xlsx", buf, Options{})
	require.NoError(t, err)

	rows, cols := f.Shape()
	assert.Equal(t, 4, rows, "blank row 4 is kept as an all-missing row")
	assert.Equal(t, 2, cols)
	assert.Equal(t, 2, f.MissingCount())

	temp, ok := f.Column("temp")
	require.True(t, ok)
	assert.Equal(t, "float64", temp.Kind.String())
	assert.False(t, temp.Cells[2].Valid)
}

func TestIngest_XLSXTrailingBlankRowsDropped(t *testing.T) {
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	require.NoError(t, wb.SetSheetRow(sheet, "A1", &[]any{"n"}))
	require.NoError(t, wb.SetSheetRow(sheet, "A2", &[]any{1}))
	require.NoError(t, wb.SetCellValue(sheet, "A6", ""))
	buf, err := wb.WriteToBuffer()
	require.NoError(t, err)

	f, err := Ingest(context.Background(), "n.xlsx", buf, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, f.Rows())
	assert.Equal(t, "int64", f.Columns()[0].Kind.String())
}

func TestIngest_XLSXFormattedCells(t *testing.T) {
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	require.NoError(t, wb.SetSheetRow(sheet, "A1", &[]any{"amount", "day", "when", "ok"}))

	thousands, err := wb.NewStyle(&excelize.Style{NumFmt: 3})
	require.NoError(t, err)
	shortDate, err := wb.NewStyle(&excelize.Style{NumFmt: 14})
	require.NoError(t, err)
	isoCode := "yyyy-mm-dd hh:mm"
	isoDate, err := wb.NewStyle(&excelize.Style{CustomNumFmt: &isoCode})
	require.NoError(t, err)

	amounts := []int{1234567, 42}
	days := []time.Time{
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
	}
	for i := range amounts {
		row := i + 2
		a, _ := excelize.CoordinatesToCellName(1, row)
		d, _ := excelize.CoordinatesToCellName(2, row)
		w, _ := excelize.CoordinatesToCellName(3, row)
		o, _ := excelize.CoordinatesToCellName(4, row)
		require.NoError(t, wb.SetCellValue(sheet, a, amounts[i]))
		require.NoError(t, wb.SetCellStyle(sheet, a, a, thousands))
		require.NoError(t, wb.SetCellValue(sheet, d, days[i]))
		require.NoError(t, wb.SetCellStyle(sheet, d, d, shortDate))
		require.NoError(t, wb.SetCellValue(sheet, w, days[i].Add(90*time.Minute)))
		require.NoError(t, wb.SetCellStyle(sheet, w, w, isoDate))
		require.NoError(t, wb.SetCellValue(sheet, o, i == 0))
	}
	buf, err := wb.WriteToBuffer()
	require.NoError(t, err)

	f, err := Ingest(context.Background(), "formatted.xlsx", buf, Options{})
	require.NoError(t, err)

	kinds := map[string]string{}
	for _, col := range f.Columns() {
		kinds[col.Name] = col.Kind.String()
	}
	assert.Equal(t, map[string]string{
		"amount": "int64",
		"day":    "datetime64[ns]",
		"when":   "datetime64[ns]",
		"ok":     "bool",
	}, kinds)

	_, rows := f.Records()
	assert.Equal(t, []string{"1234567", "2024-01-02", "2024-01-02 01:30:00", "True"}, rows[0])
	assert.Equal(t, []string{"42", "2024-02-03", "2024-02-03 01:30:00", "False"}, rows[1])
}

func TestClassifyFormatCode(t *testing.T) {
	tests := []struct {
		code string
		want numFmtClass
	}{
		{"#,##0", fmtNumber},
		{"0.00E+00", fmtNumber},
		{"General", fmtNumber},
		{`0 "days"`, fmtNumber},
		{"yyyy-mm-dd", fmtDate},
		{"[$-409]dddd, mmmm d", fmtDate},
		{"[h]:mm:ss", fmtTime},
		{"hh:mm AM/PM", fmtTime},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyFormatCode(tt.code))
		})
	}
}

func TestIngest_XLSXGarbage(t *testing.T) {
	_, err := Ingest(context.Background(), "bad.xlsx", strings.NewReader("not a zip"), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid xlsx")
}

func TestUTF8Sanitizer_SplitRune(t *testing.T) {
	// "é" is 0xC3 0xA9; feed it one byte at a time.
	src := io.MultiReader(bytes.NewReader([]byte{'a', 0xC3}), bytes.NewReader([]byte{0xA9, 'b'}))

	out, err := io.ReadAll(newUTF8Sanitizer(src))
	require.NoError(t, err)
	assert.Equal(t, "aéb", string(out))
}

func TestSkipBOM(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"with BOM", append([]byte{0xEF, 0xBB, 0xBF}, "x,y"...), "x,y"},
		{"without BOM", []byte("x,y"), "x,y"},
		{"only BOM", []byte{0xEF, 0xBB, 0xBF}, ""},
		{"partial BOM", []byte{0xEF, 0xBB, 'a'}, string([]byte{0xEF, 0xBB, 'a'})},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := io.ReadAll(skipBOM(bytes.NewReader(tt.input)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}
