// Package audit records what each session did: uploads, cleaning actions,
// exports and resets. Entries carry counts and file names only, never cell
// values.
package audit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Action is the kind of audited operation.
type Action string

const (
	ActionUpload   Action = "upload"
	ActionClean    Action = "clean"
	ActionExport   Action = "export"
	ActionReset    Action = "reset"
	ActionLanguage Action = "language"
)

// Severity ranks entries for review.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SeverityOf returns the severity recorded for an action.
func SeverityOf(a Action) Severity {
	switch a {
	case ActionUpload:
		return SeverityHigh
	case ActionReset:
		return SeverityCritical
	case ActionExport, ActionLanguage:
		return SeverityLow
	default:
		return SeverityMedium
	}
}

// Entry is one audit record.
type Entry struct {
	ID         string    `json:"id" db:"id"`
	SessionID  string    `json:"sessionId" db:"session_id"`
	Action     Action    `json:"action" db:"action"`
	Severity   Severity  `json:"severity" db:"severity"`
	FileName   string    `json:"fileName,omitempty" db:"file_name"`
	RowsBefore int       `json:"rowsBefore" db:"rows_before"`
	RowsAfter  int       `json:"rowsAfter" db:"rows_after"`
	Detail     string    `json:"detail,omitempty" db:"detail"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// Recorder stores and lists audit entries.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
	Recent(ctx context.Context, sessionID string, limit int) ([]Entry, error)
}

// DefaultRecentLimit is used when Recent is called with limit <= 0.
const DefaultRecentLimit = 50

// prepare fills the generated fields of an entry.
func prepare(e Entry, now time.Time) Entry {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Severity == "" {
		e.Severity = SeverityOf(e.Action)
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now.UTC()
	}
	return e
}

// DefaultMemoryLimit bounds a MemoryRecorder created with limit <= 0.
const DefaultMemoryLimit = 1000

// MemoryRecorder keeps the most recent entries in a ring buffer.
type MemoryRecorder struct {
	mu      sync.RWMutex
	entries []Entry
	next    int
	full    bool
	now     func() time.Time
}

// NewMemoryRecorder creates a recorder holding at most limit entries.
func NewMemoryRecorder(limit int) *MemoryRecorder {
	if limit <= 0 {
		limit = DefaultMemoryLimit
	}
	return &MemoryRecorder{entries: make([]Entry, limit), now: time.Now}
}

// Record implements Recorder.
func (m *MemoryRecorder) Record(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[m.next] = prepare(e, m.now())
	m.next = (m.next + 1) % len(m.entries)
	if m.next == 0 {
		m.full = true
	}
	return nil
}

// Recent implements Recorder. Entries are returned newest first; an empty
// sessionID matches every session.
func (m *MemoryRecorder) Recent(_ context.Context, sessionID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	size := m.next
	if m.full {
		size = len(m.entries)
	}

	var out []Entry
	for i := 1; i <= size && len(out) < limit; i++ {
		e := m.entries[(m.next-i+len(m.entries))%len(m.entries)]
		if sessionID == "" || e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out, nil
}
