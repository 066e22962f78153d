// Package session keeps per-user working state in memory between requests.
//
// Each browser holds an opaque session ID in a cookie; the Store maps that ID
// to the user's language, working table and last uploaded file name. Nothing
// is persisted: sessions disappear when they expire or the process exits.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/JonMunkholm/datazen/internal/frame"
	"github.com/JonMunkholm/datazen/internal/i18n"
	"github.com/google/uuid"
)

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = errors.New("session not found")

// DefaultTTL is how long an idle session is kept.
const DefaultTTL = 2 * time.Hour

// FlashLevel styles a one-shot notice.
type FlashLevel string

const (
	FlashSuccess FlashLevel = "success"
	FlashInfo    FlashLevel = "info"
	FlashWarning FlashLevel = "warning"
	FlashError   FlashLevel = "error"
)

// Flash is a localized notice shown once on the next rendered page.
type Flash struct {
	Level FlashLevel
	Text  string
}

// Session is one user's state.
type Session struct {
	ID           string
	Language     i18n.Code
	Table        *frame.Frame
	LastUploaded string
	Flashes      []Flash
	CreatedAt    time.Time
	LastSeen     time.Time
}

// HasTable reports whether a working table is loaded.
func (s *Session) HasTable() bool { return s.Table != nil }

// AddFlash queues a notice for the next page.
func (s *Session) AddFlash(level FlashLevel, text string) {
	s.Flashes = append(s.Flashes, Flash{Level: level, Text: text})
}

// Store is a concurrency-safe in-memory session map.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a store that expires sessions idle for longer than ttl.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns a copy of the session with the given ID.
func (s *Store) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.lookup(id)
	if !ok {
		return Session{}, ErrNotFound
	}
	sess.LastSeen = s.now()
	return snapshot(sess), nil
}

// GetOrCreate returns the session for id, minting a new one with language
// lang when id is empty, unknown or expired. created reports which happened.
func (s *Store) GetOrCreate(id string, lang i18n.Code) (sess Session, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.lookup(id); ok {
		existing.LastSeen = s.now()
		return snapshot(existing), false
	}

	if lang == "" {
		lang = i18n.DefaultCode
	}
	now := s.now()
	fresh := &Session{
		ID:        uuid.NewString(),
		Language:  lang,
		CreatedAt: now,
		LastSeen:  now,
	}
	s.sessions[fresh.ID] = fresh
	return snapshot(fresh), true
}

// Update runs fn with exclusive access to the session and returns the
// resulting copy. If fn returns an error the session is left unchanged.
func (s *Store) Update(id string, fn func(*Session) error) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.lookup(id)
	if !ok {
		return Session{}, ErrNotFound
	}

	work := snapshot(sess)
	if err := fn(&work); err != nil {
		return snapshot(sess), err
	}
	work.ID = sess.ID
	work.LastSeen = s.now()
	*sess = work
	return snapshot(sess), nil
}

// PopFlashes returns and clears the queued notices.
func (s *Store) PopFlashes(id string) []Flash {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.lookup(id)
	if !ok {
		return nil
	}
	out := sess.Flashes
	sess.Flashes = nil
	return out
}

// Delete discards a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of live sessions, expired ones included until the
// next sweep.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle since before now-ttl and returns how many went.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.LastSeen) > s.ttl {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// StartSweeper sweeps expired sessions every interval until ctx is done.
// It blocks; run it in its own goroutine.
func (s *Store) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	slog.Info("session sweeper started", "interval", interval, "ttl", s.ttl)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("session sweeper stopped")
			return
		case <-ticker.C:
			if n := s.Sweep(s.now()); n > 0 {
				slog.Info("expired sessions removed", "count", n, "remaining", s.Len())
			}
		}
	}
}

// lookup returns a live session. Caller holds mu.
func (s *Store) lookup(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.now().Sub(sess.LastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}
	return sess, true
}

func snapshot(s *Session) Session {
	out := *s
	if len(s.Flashes) > 0 {
		out.Flashes = append([]Flash(nil), s.Flashes...)
	}
	return out
}
