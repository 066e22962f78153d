// Package export writes the working table back out as CSV or XLSX.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/JonMunkholm/datazen/internal/frame"
	"github.com/xuri/excelize/v2"
)

// Prefix tags exported file names.
const Prefix = "cleaned_"

// ErrUnknownFormat is returned for an unsupported export format.
var ErrUnknownFormat = errors.New("unknown export format")

// Format is an export file format.
type Format string

const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

// ParseFormat validates a format name. The empty string means CSV.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "csv":
		return CSV, nil
	case "xlsx":
		return XLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == XLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// FileName returns the download name for a table read from original:
// Prefix plus the base name, with the extension swapped for XLSX.
func FileName(original string, format Format) string {
	name := filepath.Base(original)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "data.csv"
	}
	if format == XLSX {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".xlsx"
	}
	return Prefix + name
}

// Write encodes f in the given format.
func Write(w io.Writer, f *frame.Frame, format Format) error {
	switch format {
	case CSV:
		return WriteCSV(w, f)
	case XLSX:
		return WriteXLSX(w, f)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// WriteCSV writes the header and rows as UTF-8 CSV without an index column.
// Missing cells are empty fields.
func WriteCSV(w io.Writer, f *frame.Frame) error {
	header, rows := f.Records()
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	return nil
}

const sheetName = "Sheet1"

// WriteXLSX writes the table to the first sheet of a new workbook. Numbers
// and booleans are stored as typed cells, everything else as text.
func WriteXLSX(w io.Writer, f *frame.Frame) error {
	wb := excelize.NewFile()
	defer wb.Close()

	sw, err := wb.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("open sheet: %w", err)
	}

	header := make([]any, f.Cols())
	for j, name := range f.Names() {
		header[j] = name
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	cols := f.Columns()
	formatters := make([]func(frame.Cell) string, len(cols))
	for j, col := range cols {
		formatters[j] = col.Formatter()
	}

	for i := 0; i < f.Rows(); i++ {
		row := make([]any, len(cols))
		for j, col := range cols {
			row[j] = xlsxValue(col.Kind, col.Cells[i], formatters[j])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}
	if _, err := wb.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func xlsxValue(kind frame.Kind, cell frame.Cell, format func(frame.Cell) string) any {
	if !cell.Valid {
		return nil
	}
	switch kind {
	case frame.KindInt:
		return cell.Int
	case frame.KindFloat:
		return cell.Num
	case frame.KindBool:
		return cell.Num != 0
	}
	return format(cell)
}
