// Package ingest turns an uploaded byte stream into a frame.
//
// A decoder is chosen from the file name's extension through a fixed lookup
// table; there is no content sniffing. Extensions outside the table fail with
// ErrUnsupportedType rather than falling through to a default parser.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/JonMunkholm/datazen/internal/frame"
	"github.com/JonMunkholm/datazen/internal/logging"
)

var (
	// ErrUnsupportedType is returned for extensions without a decoder.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrEmptyFile is returned when the input has no header row.
	ErrEmptyFile = errors.New("empty file")

	// ErrFileTooLarge is returned once the input passes Options.MaxBytes.
	ErrFileTooLarge = errors.New("file too large")
)

// Decoder parses one file format.
type Decoder interface {
	Decode(ctx context.Context, r io.Reader) (*frame.Frame, error)
}

// decoders maps lower-case extensions to their decoder.
var decoders = map[string]Decoder{
	".csv":  CSVDecoder{},
	".xlsx": XLSXDecoder{},
}

// Options tune a single ingestion.
type Options struct {
	// MaxBytes caps the input size; zero means unlimited.
	MaxBytes int64
}

// SupportedExtensions lists the accepted extensions, sorted.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(decoders))
	for ext := range decoders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// DecoderFor returns the decoder registered for the file name's extension.
func DecoderFor(name string) (Decoder, error) {
	ext := strings.ToLower(filepath.Ext(name))
	dec, ok := decoders[ext]
	if !ok {
		if ext == "" {
			ext = "(none)"
		}
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}
	return dec, nil
}

// Ingest decodes r according to name's extension.
func Ingest(ctx context.Context, name string, r io.Reader, opts Options) (*frame.Frame, error) {
	dec, err := DecoderFor(name)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	f, err := dec.Decode(ctx, &sizeLimitReader{r: r, limit: opts.MaxBytes})
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(name), err)
	}

	rows, cols := f.Shape()
	logging.FromContext(ctx).Debug("file decoded",
		"file", filepath.Base(name),
		"rows", rows,
		"cols", cols,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return f, nil
}

// normalizeHeader fills blank names and disambiguates repeated ones so every
// column can be addressed by name.
func normalizeHeader(raw []string) []string {
	header := make([]string, len(raw))
	seen := make(map[string]int, len(raw))
	for i, name := range raw {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		base := name
		for seen[name] > 0 {
			name = fmt.Sprintf("%s.%d", base, seen[base])
			seen[base]++
		}
		seen[name]++
		header[i] = name
	}
	return header
}
