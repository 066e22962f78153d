package ingest

// readers.go wraps upload streams before they reach a decoder:
//
//   - skipBOM drops a leading UTF-8 byte order mark (Excel "CSV UTF-8" exports)
//   - utf8Sanitizer replaces invalid UTF-8 bytes with '?' without buffering the file
//   - sizeLimitReader fails with ErrFileTooLarge once the configured size is passed

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// skipBOM returns a reader positioned after a UTF-8 BOM, if r starts with one.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}

// utf8Sanitizer replaces invalid UTF-8 bytes with '?' as data streams through.
// Bytes of a multi-byte rune split across reads are carried to the next read.
type utf8Sanitizer struct {
	r       io.Reader
	pending []byte
	err     error
}

func newUTF8Sanitizer(r io.Reader) *utf8Sanitizer {
	return &utf8Sanitizer{r: r, pending: make([]byte, 0, utf8.UTFMax)}
}

func (s *utf8Sanitizer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		n := copy(p, s.pending)
		s.pending = s.pending[:copy(s.pending, s.pending[n:])]

		if s.err == nil && n < len(p) {
			m, err := s.r.Read(p[n:])
			n += m
			s.err = err
		}

		// A buffer shorter than one rune can never complete a split rune.
		atEOF := (s.err != nil && len(s.pending) == 0) || len(p) < utf8.UTFMax
		w, tail := sanitizeInPlace(p[:n], atEOF)
		if len(tail) > 0 {
			s.pending = append(tail, s.pending...)
		}

		if w > 0 {
			return w, nil
		}
		if s.err != nil && len(s.pending) == 0 {
			return 0, s.err
		}
	}
}

// sanitizeInPlace rewrites data so it holds only valid UTF-8 and returns the
// number of bytes kept. Unless atEOF, an incomplete rune at the end is
// returned as tail instead of being replaced.
func sanitizeInPlace(data []byte, atEOF bool) (int, []byte) {
	if utf8.Valid(data) {
		return len(data), nil
	}

	w := 0
	for r := 0; r < len(data); {
		c := data[r]
		if c < utf8.RuneSelf {
			data[w] = c
			w++
			r++
			continue
		}
		if !atEOF && !utf8.FullRune(data[r:]) {
			return w, append([]byte(nil), data[r:]...)
		}
		_, size := utf8.DecodeRune(data[r:])
		if size == 1 {
			data[w] = '?'
			w++
			r++
			continue
		}
		copy(data[w:], data[r:r+size])
		w += size
		r += size
	}
	return w, nil
}

// sizeLimitReader counts bytes and fails once more than limit have been read.
// A non-positive limit disables the check.
type sizeLimitReader struct {
	r     io.Reader
	limit int64
	read  int64
}

func (l *sizeLimitReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.read += int64(n)
	if l.limit > 0 && l.read > l.limit {
		return n, fmt.Errorf("%w: more than %d bytes", ErrFileTooLarge, l.limit)
	}
	return n, err
}
