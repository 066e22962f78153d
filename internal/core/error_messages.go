package core

// error_messages.go maps technical errors to user-facing messages with codes
// for support reference. Users can quote the code when reporting a problem.
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File too large: file exceeds the upload size limit
//	          Patterns: "file too large", "request body too large"
//	FILE002 - Invalid CSV: file is not valid comma-separated text
//	          Patterns: "invalid csv"
//	FILE003 - Invalid spreadsheet: file is not a readable .xlsx workbook
//	          Patterns: "invalid xlsx"
//	FILE004 - No file: no file was selected
//	          Patterns: "no file provided"
//	FILE005 - Empty file: the file has no header row
//	          Patterns: "empty file"
//	FILE006 - Unsupported type: only .csv and .xlsx are accepted
//	          Patterns: "unsupported file type"
//
// # Cleaning Errors (CLN001-CLN099)
//
//	CLN001 - Unknown action
//	         Patterns: "unknown cleaning action"
//
// # Visualization Errors (VIS001-VIS099)
//
//	VIS001 - Too few columns     Patterns: "at least two columns"
//	VIS002 - Column not found    Patterns: "column not found"
//	VIS003 - Non-numeric Y axis  Patterns: "must be numeric"
//	VIS004 - Nothing to plot     Patterns: "no rows with both"
//	VIS005 - Too many bars       Patterns: "too many distinct"
//	VIS006 - Unknown chart type  Patterns: "unknown chart type"
//
// # Session Errors (SES001-SES099)
//
//	SES001 - Session expired     Patterns: "session not found"
//	SES002 - No data loaded      Patterns: "no table loaded"
//	SES003 - Unknown language    Patterns: "unknown language"
//	SES004 - Unknown format      Patterns: "unknown export format"
//
// # Upload Errors (UPL001-UPL099)
//
//	UPL002 - System busy: too many uploads are being parsed
//	         Patterns: "too many uploads"
//	UPL004 - Request cancelled   Patterns: "context canceled"
//	UPL005 - Request timeout     Patterns: "context deadline exceeded"
//
// # Rate Limiting (RATE001-RATE099)
//
//	RATE001 - Too many requests  Patterns: "rate limit"
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: check the server log for the request ID.
//
// Patterns are matched case-insensitively with strings.Contains and the first
// match wins, so specific patterns come before general ones.

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string `json:"message"` // What happened (user-friendly)
	Action  string `json:"action"`  // What to do about it
	Code    string `json:"code"`    // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// =========================================================================
	// File Errors (FILE001-FILE006)
	// =========================================================================
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "File exceeds the maximum upload size",
			Action:  "Split the file into smaller parts",
			Code:    "FILE001",
		},
	},
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "File exceeds the maximum upload size",
			Action:  "Split the file into smaller parts",
			Code:    "FILE001",
		},
	},
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "File is not a valid CSV",
			Action:  "Ensure the file is comma-separated with a header row",
			Code:    "FILE002",
		},
	},
	{
		pattern: "invalid xlsx",
		msg: UserMessage{
			Message: "File is not a readable Excel workbook",
			Action:  "Save the file as .xlsx and upload it again",
			Code:    "FILE003",
		},
	},
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No file was selected",
			Action:  "Please choose a CSV or Excel file to upload",
			Code:    "FILE004",
		},
	},
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The uploaded file is empty",
			Action:  "Upload a file with a header row",
			Code:    "FILE005",
		},
	},
	{
		pattern: "unsupported file type",
		msg: UserMessage{
			Message: "This file type is not supported",
			Action:  "Upload a .csv or .xlsx file",
			Code:    "FILE006",
		},
	},

	// =========================================================================
	// Cleaning Errors (CLN001)
	// =========================================================================
	{
		pattern: "unknown cleaning action",
		msg: UserMessage{
			Message: "Unknown cleaning action",
			Action:  "Use one of the cleaning buttons",
			Code:    "CLN001",
		},
	},

	// =========================================================================
	// Visualization Errors (VIS001-VIS006)
	// =========================================================================
	{
		pattern: "at least two columns",
		msg: UserMessage{
			Message: "At least two columns are needed for a chart",
			Action:  "Upload a table with two or more columns",
			Code:    "VIS001",
		},
	},
	{
		pattern: "column not found",
		msg: UserMessage{
			Message: "The selected column does not exist",
			Action:  "Pick the axes again from the lists",
			Code:    "VIS002",
		},
	},
	{
		pattern: "must be numeric",
		msg: UserMessage{
			Message: "The Y axis needs a numeric column",
			Action:  "Choose a numeric column for the Y axis",
			Code:    "VIS003",
		},
	},
	{
		pattern: "no rows with both",
		msg: UserMessage{
			Message: "No rows have values for both axes",
			Action:  "Choose other columns or fill missing values first",
			Code:    "VIS004",
		},
	},
	{
		pattern: "too many distinct",
		msg: UserMessage{
			Message: "Too many categories for a bar chart",
			Action:  "Use a line or scatter chart, or choose another X axis",
			Code:    "VIS005",
		},
	},
	{
		pattern: "unknown chart type",
		msg: UserMessage{
			Message: "Unknown chart type",
			Action:  "Choose bar, line or scatter",
			Code:    "VIS006",
		},
	},

	// =========================================================================
	// Session Errors (SES001-SES004)
	// =========================================================================
	{
		pattern: "session not found",
		msg: UserMessage{
			Message: "Your session has expired",
			Action:  "Reload the page and upload the file again",
			Code:    "SES001",
		},
	},
	{
		pattern: "no table loaded",
		msg: UserMessage{
			Message: "No data is loaded",
			Action:  "Upload a file first",
			Code:    "SES002",
		},
	},
	{
		pattern: "unknown language",
		msg: UserMessage{
			Message: "Unsupported language",
			Action:  "Pick a language from the list",
			Code:    "SES003",
		},
	},
	{
		pattern: "unknown export format",
		msg: UserMessage{
			Message: "Unsupported download format",
			Action:  "Download as CSV or Excel",
			Code:    "SES004",
		},
	},

	// =========================================================================
	// Upload Errors (UPL002-UPL005)
	// =========================================================================
	{
		pattern: "too many uploads",
		msg: UserMessage{
			Message: "System busy, too many uploads in progress",
			Action:  "Please wait a moment and try again",
			Code:    "UPL002",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "UPL004",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Try a smaller file or check your connection",
			Code:    "UPL005",
		},
	},

	// =========================================================================
	// Rate Limiting (RATE001)
	// =========================================================================
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when no pattern matches.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error into a user-friendly message.
// It returns the zero UserMessage for a nil error and ERR000 when no pattern
// matches.
//
// Example:
//
//	msg := MapError(fmt.Errorf("decode a.csv: %w", ingest.ErrEmptyFile))
//	// msg.Code == "FILE005"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}
	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern, as opposed to
// the generic ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// IsFileError reports whether err is a parse failure of an uploaded file.
// Those are shown inline on the page rather than as an error response.
func IsFileError(err error) bool {
	return strings.HasPrefix(MapError(err).Code, "FILE")
}

// UserError pairs a technical error with its user-facing message.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err to a UserError. It returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
