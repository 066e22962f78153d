package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/JonMunkholm/datazen/internal/frame"
)

// ctxCheckInterval is how many records are read between context checks.
const ctxCheckInterval = 1000

// CSVDecoder reads comma-separated text with a header row.
//
// Rows shorter than the header are padded with missing cells. Rows longer
// than the header are rejected, since there is no column to put the extra
// values in.
type CSVDecoder struct{}

// Decode implements Decoder.
func (CSVDecoder) Decode(ctx context.Context, r io.Reader) (*frame.Frame, error) {
	cr := csv.NewReader(newUTF8Sanitizer(skipBOM(r)))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = false

	rawHeader, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, csvError(err)
	}
	header := normalizeHeader(rawHeader)

	var rows [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		if len(rec) > len(header) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("invalid csv: line %d has %d fields, header has %d",
				line, len(rec), len(header))
		}
		rows = append(rows, rec)

		if len(rows)%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
	}

	return frame.FromRecords(header, rows)
}

// csvError keeps size-limit errors intact and labels everything else as a
// malformed CSV.
func csvError(err error) error {
	if errors.Is(err, ErrFileTooLarge) {
		return err
	}
	return fmt.Errorf("invalid csv: %w", err)
}
