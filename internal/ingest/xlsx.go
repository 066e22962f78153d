package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JonMunkholm/datazen/internal/frame"
	"github.com/xuri/excelize/v2"
)

// XLSXDecoder reads the first worksheet of an Office Open XML workbook.
// Row 1 is the header. Cells are read as stored rather than as displayed, so
// number formats such as "#,##0" do not turn numbers into text; date-formatted
// serials become datetimes and boolean cells become True/False. Interior blank
// rows are kept as all-missing rows; trailing blank rows are dropped.
type XLSXDecoder struct{}

// Decode implements Decoder.
func (XLSXDecoder) Decode(ctx context.Context, r io.Reader) (*frame.Frame, error) {
	raw := excelize.Options{RawCellValue: true}
	wb, err := excelize.OpenReader(r, raw)
	if err != nil {
		if errors.Is(err, ErrFileTooLarge) {
			return nil, err
		}
		return nil, fmt.Errorf("invalid xlsx: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}
	sheet := sheets[0]

	rows, err := wb.GetRows(sheet, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid xlsx: read sheet %q: %w", sheet, err)
	}

	conv := newCellConverter(wb, sheet)
	for i, row := range rows {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		for j, v := range row {
			if v == "" {
				continue
			}
			row[j], err = conv.text(j, i, v)
			if err != nil {
				return nil, fmt.Errorf("invalid xlsx: %w", err)
			}
		}
	}

	rows = trimTrailingBlankRows(rows)
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	// Cells to the right of the header row get generated column names.
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	rawHeader := make([]string, width)
	copy(rawHeader, rows[0])

	return frame.FromRecords(normalizeHeader(rawHeader), rows[1:])
}

func trimTrailingBlankRows(rows [][]string) [][]string {
	n := len(rows)
	for n > 0 && blankRow(rows[n-1]) {
		n--
	}
	return rows[:n]
}

func blankRow(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}

// Layouts handed to frame inference for converted serials.
const (
	xlsxDateTimeLayout = "2006-01-02 15:04:05"
	xlsxTimeLayout     = "15:04:05"
)

type numFmtClass int

const (
	fmtNumber numFmtClass = iota
	fmtDate
	fmtTime
)

// builtinNumFmts classifies the built-in number format IDs that render
// serials as dates or clock times. Unlisted IDs are plain numbers.
var builtinNumFmts = map[int]numFmtClass{
	14: fmtDate, 15: fmtDate, 16: fmtDate, 17: fmtDate, 22: fmtDate,
	27: fmtDate, 28: fmtDate, 29: fmtDate, 30: fmtDate, 31: fmtDate, 36: fmtDate,
	50: fmtDate, 51: fmtDate, 52: fmtDate, 53: fmtDate, 54: fmtDate,
	55: fmtDate, 56: fmtDate, 57: fmtDate, 58: fmtDate,
	18: fmtTime, 19: fmtTime, 20: fmtTime, 21: fmtTime,
	32: fmtTime, 33: fmtTime, 34: fmtTime, 35: fmtTime,
	45: fmtTime, 46: fmtTime, 47: fmtTime,
}

// cellConverter rewrites raw cell values into text frame inference reads
// the way a spreadsheet user means them.
type cellConverter struct {
	wb       *excelize.File
	sheet    string
	date1904 bool
	styles   map[int]numFmtClass
}

func newCellConverter(wb *excelize.File, sheet string) *cellConverter {
	c := &cellConverter{wb: wb, sheet: sheet, styles: make(map[int]numFmtClass)}
	if props, err := wb.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		c.date1904 = *props.Date1904
	}
	return c
}

// text converts the raw value v of the cell at zero-based (col, row).
func (c *cellConverter) text(col, row int, v string) (string, error) {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return "", err
	}
	typ, err := c.wb.GetCellType(c.sheet, name)
	if err != nil {
		return "", err
	}

	switch typ {
	case excelize.CellTypeBool:
		if v == "1" || strings.EqualFold(v, "true") {
			return "True", nil
		}
		return "False", nil
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		serial, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return v, nil
		}
		class, err := c.numFmt(name)
		if err != nil {
			return "", err
		}
		if class == fmtNumber {
			return v, nil
		}
		t, err := excelize.ExcelDateToTime(serial, c.date1904)
		if err != nil {
			return v, nil
		}
		if class == fmtTime {
			return t.Format(xlsxTimeLayout), nil
		}
		return t.Format(xlsxDateTimeLayout), nil
	}
	return v, nil
}

// numFmt classifies the number format applied to a cell, cached per style.
func (c *cellConverter) numFmt(cell string) (numFmtClass, error) {
	idx, err := c.wb.GetCellStyle(c.sheet, cell)
	if err != nil {
		return fmtNumber, err
	}
	if class, ok := c.styles[idx]; ok {
		return class, nil
	}

	class := fmtNumber
	style, err := c.wb.GetStyle(idx)
	if err != nil {
		return fmtNumber, err
	}
	if builtin, ok := builtinNumFmts[style.NumFmt]; ok {
		class = builtin
	} else if style.CustomNumFmt != nil {
		class = classifyFormatCode(*style.CustomNumFmt)
	}
	c.styles[idx] = class
	return class, nil
}

// classifyFormatCode inspects a custom number format code. Quoted literals,
// bracketed sections and escaped characters are ignored; a year or day token
// marks a date, an hour or second token marks a clock time.
func classifyFormatCode(code string) numFmtClass {
	var b strings.Builder
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case inQuote:
			inQuote = ch != '"'
		case inBracket:
			inBracket = ch != ']'
		case ch == '"':
			inQuote = true
		case ch == '[':
			inBracket = true
		case ch == '\\' || ch == '_' || ch == '*':
			i++
		default:
			b.WriteByte(ch)
		}
	}

	tokens := strings.ToLower(b.String())
	// Only the first section (positive numbers) matters.
	if k := strings.IndexByte(tokens, ';'); k >= 0 {
		tokens = tokens[:k]
	}
	switch {
	case strings.ContainsAny(tokens, "yd"):
		return fmtDate
	case strings.ContainsAny(tokens, "hs"):
		return fmtTime
	}
	return fmtNumber
}
