package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/JonMunkholm/datazen/internal/chart"
	"github.com/JonMunkholm/datazen/internal/clean"
	"github.com/JonMunkholm/datazen/internal/export"
	"github.com/JonMunkholm/datazen/internal/i18n"
	"github.com/JonMunkholm/datazen/internal/ingest"
	"github.com/JonMunkholm/datazen/internal/session"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{name: "nil error returns empty", err: nil, wantCode: ""},
		{name: "file too large", err: fmt.Errorf("decode a.csv: %w", ingest.ErrFileTooLarge), wantCode: "FILE001"},
		{name: "http body limit", err: errors.New("http: request body too large"), wantCode: "FILE001"},
		{name: "invalid csv", err: errors.New("decode a.csv: invalid csv: bare quote"), wantCode: "FILE002"},
		{name: "invalid xlsx", err: errors.New("decode a.xlsx: invalid xlsx: zip: not a valid zip file"), wantCode: "FILE003"},
		{name: "no file", err: ErrNoFile, wantCode: "FILE004"},
		{name: "empty file", err: fmt.Errorf("decode a.csv: %w", ingest.ErrEmptyFile), wantCode: "FILE005"},
		{name: "unsupported type", err: fmt.Errorf("%w: .txt", ingest.ErrUnsupportedType), wantCode: "FILE006"},
		{name: "unknown action", err: clean.ErrUnknownAction, wantCode: "CLN001"},
		{name: "too few columns", err: chart.ErrTooFewColumns, wantCode: "VIS001"},
		{name: "column not found", err: chart.ErrColumnNotFound, wantCode: "VIS002"},
		{name: "non numeric axis", err: chart.ErrNonNumericAxis, wantCode: "VIS003"},
		{name: "no data", err: chart.ErrNoData, wantCode: "VIS004"},
		{name: "too many bars", err: chart.ErrTooManyBars, wantCode: "VIS005"},
		{name: "unknown chart", err: chart.ErrUnknownKind, wantCode: "VIS006"},
		{name: "session expired", err: session.ErrNotFound, wantCode: "SES001"},
		{name: "no table", err: ErrNoTable, wantCode: "SES002"},
		{name: "unknown language", err: i18n.ErrUnknownLanguage, wantCode: "SES003"},
		{name: "unknown format", err: export.ErrUnknownFormat, wantCode: "SES004"},
		{name: "busy", err: ErrTooManyUploads, wantCode: "UPL002"},
		{name: "cancelled", err: context.Canceled, wantCode: "UPL004"},
		{name: "deadline", err: context.DeadlineExceeded, wantCode: "UPL005"},
		{name: "rate limit", err: errors.New("rate limit exceeded"), wantCode: "RATE001"},
		{name: "unknown error returns default", err: errors.New("some random internal error"), wantCode: "ERR000"},
		{name: "case insensitive matching", err: errors.New("EMPTY FILE"), wantCode: "FILE005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError(%v) code = %q, want %q", tt.err, got.Code, tt.wantCode)
			}
			if tt.err != nil && got.Message == "" {
				t.Errorf("MapError(%v) has empty message", tt.err)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	result := FormatUserError(ingest.ErrEmptyFile)

	expected := "The uploaded file is empty (Code: FILE005). Upload a file with a header row"
	if result != expected {
		t.Errorf("FormatUserError() = %q, want %q", result, expected)
	}
	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", got)
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error is not user facing", err: nil, want: false},
		{name: "known error is user facing", err: chart.ErrNoData, want: true},
		{name: "unknown error is not user facing", err: errors.New("random internal error xyz"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserFacing(tt.err); got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsFileError(t *testing.T) {
	if !IsFileError(fmt.Errorf("decode x.csv: %w", ingest.ErrEmptyFile)) {
		t.Error("empty file should be a file error")
	}
	if IsFileError(ErrTooManyUploads) {
		t.Error("busy limiter is not a file error")
	}
}

func TestNewUserError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		if got := NewUserError(nil); got != nil {
			t.Errorf("NewUserError(nil) = %v, want nil", got)
		}
	})

	t.Run("wraps technical error with user message", func(t *testing.T) {
		techErr := fmt.Errorf("decode a.csv: %w", ingest.ErrEmptyFile)
		userErr := NewUserError(techErr)

		if userErr.Error() != "The uploaded file is empty" {
			t.Errorf("Error() = %q, want user message", userErr.Error())
		}
		if !errors.Is(userErr, ingest.ErrEmptyFile) {
			t.Error("Unwrap() should expose the original error")
		}
	})
}
