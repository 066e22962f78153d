package frame

// infer.go turns raw text columns into typed columns.
//
// Uploaded data is messy; inference is deliberately conservative:
//   - A fixed set of markers ("", "NA", "null", "#N/A", ...) means missing
//   - A column is integer only if every present value is an integer and
//     nothing is missing; a missing value pushes it to float
//   - Booleans must be spelled True/False (any of three casings)
//   - Datetimes must use an ISO layout; locale formats stay text

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// missingMarkers are the cell texts read as missing values.
var missingMarkers = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

var (
	intRegex   = regexp.MustCompile(`^[+-]?\d+$`)
	floatRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
)

// datetimeLayouts are tried in order; the first that parses wins.
var datetimeLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

// IsMissing reports whether raw text denotes a missing value. Markers match
// exactly: " NA " is text, not missing.
func IsMissing(s string) bool {
	_, ok := missingMarkers[s]
	return ok
}

// FromRecords builds a frame from a header and text rows, inferring each
// column's kind. Rows shorter than the header are padded with missing cells;
// longer rows are truncated to the header width.
func FromRecords(header []string, rows [][]string) (*Frame, error) {
	cols := make([]*Column, len(header))
	raw := make([]string, len(rows))
	for j, name := range header {
		for i, row := range rows {
			if j < len(row) {
				raw[i] = row[j]
			} else {
				raw[i] = ""
			}
		}
		cols[j] = InferColumn(name, raw)
	}
	return New(cols)
}

// InferColumn types one column of raw text.
func InferColumn(name string, raw []string) *Column {
	present := make([]string, 0, len(raw))
	missing := 0
	for _, s := range raw {
		if IsMissing(s) {
			missing++
			continue
		}
		present = append(present, strings.TrimSpace(s))
	}

	kind := KindObject
	switch {
	case len(present) == 0:
		kind = KindObject
	case all(present, isInt):
		kind = KindInt
		if missing > 0 {
			kind = KindFloat
		}
	case all(present, isFloat):
		kind = KindFloat
	case all(present, isBool):
		kind = KindBool
		if missing > 0 {
			kind = KindObject
		}
	case all(present, isDatetime):
		kind = KindDatetime
	}

	cells := make([]Cell, len(raw))
	for i, s := range raw {
		if IsMissing(s) {
			continue
		}
		cells[i] = parseCell(kind, s)
	}
	return &Column{Name: name, Kind: kind, Cells: cells}
}

func parseCell(kind Kind, s string) Cell {
	t := strings.TrimSpace(s)
	switch kind {
	case KindInt:
		v, _ := strconv.ParseInt(t, 10, 64)
		return IntCell(v)
	case KindFloat:
		v, _ := strconv.ParseFloat(t, 64)
		return FloatCell(v)
	case KindBool:
		return BoolCell(strings.EqualFold(t, "true"))
	case KindDatetime:
		ts, _ := parseDatetime(t)
		return TimeCell(ts)
	default:
		return TextCell(s)
	}
}

func all(values []string, pred func(string) bool) bool {
	for _, v := range values {
		if !pred(v) {
			return false
		}
	}
	return true
}

func isInt(s string) bool {
	if !intRegex.MatchString(s) {
		return false
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

func isFloat(s string) bool {
	switch strings.ToLower(s) {
	case "inf", "+inf", "-inf", "infinity", "+infinity", "-infinity":
		return true
	}
	return floatRegex.MatchString(s)
}

func isBool(s string) bool {
	switch s {
	case "True", "False", "TRUE", "FALSE", "true", "false":
		return true
	}
	return false
}

func isDatetime(s string) bool {
	_, ok := parseDatetime(s)
	return ok
}

func parseDatetime(s string) (time.Time, bool) {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
