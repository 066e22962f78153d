package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/JonMunkholm/datazen/internal/audit"
	"github.com/JonMunkholm/datazen/internal/chart"
	"github.com/JonMunkholm/datazen/internal/clean"
	"github.com/JonMunkholm/datazen/internal/export"
	"github.com/JonMunkholm/datazen/internal/frame"
	"github.com/JonMunkholm/datazen/internal/i18n"
	"github.com/JonMunkholm/datazen/internal/ingest"
	"github.com/JonMunkholm/datazen/internal/logging"
	"github.com/JonMunkholm/datazen/internal/profile"
	"github.com/JonMunkholm/datazen/internal/session"
)

var (
	// ErrNoTable is returned by operations that need a loaded table.
	ErrNoTable = errors.New("no table loaded")

	// ErrNoFile is returned when an upload carries no file.
	ErrNoFile = errors.New("no file provided")
)

// auditTimeout bounds a single audit write.
const auditTimeout = 5 * time.Second

// Options configures a Service.
type Options struct {
	AppName       string
	MaxFileSize   int64
	MaxConcurrent int
	MaxWait       time.Duration
}

// Service is the entry point for every user action on a session's table.
// It is safe for concurrent use.
type Service struct {
	sessions *session.Store
	audit    audit.Recorder
	limiter  *ParseLimiter
	catalog  *i18n.Catalog
	opts     Options
}

// NewService wires a service over a session store and audit recorder.
// A nil recorder keeps entries in memory.
func NewService(store *session.Store, recorder audit.Recorder, opts Options) *Service {
	if recorder == nil {
		recorder = audit.NewMemoryRecorder(0)
	}
	if opts.AppName == "" {
		opts.AppName = "DataZen"
	}
	return &Service{
		sessions: store,
		audit:    recorder,
		limiter:  NewParseLimiter(opts.MaxConcurrent, opts.MaxWait),
		catalog:  i18n.NewCatalog(),
		opts:     opts,
	}
}

// Sessions returns the session store.
func (s *Service) Sessions() *session.Store { return s.sessions }

// Catalog returns the message catalog.
func (s *Service) Catalog() *i18n.Catalog { return s.catalog }

// Limiter returns the parse limiter.
func (s *Service) Limiter() *ParseLimiter { return s.limiter }

// AppName returns the configured application name.
func (s *Service) AppName() string { return s.opts.AppName }

// UploadOutcome reports what an upload did to the session.
type UploadOutcome struct {
	// Replaced is false when the file name matched the last upload and the
	// edited working table was kept.
	Replaced bool
	FileName string
	Summary  profile.Summary
}

// Upload parses the file and makes it the session's working table. A file
// with the same name as the previous upload keeps the current, possibly
// cleaned, table. On error the session is left unchanged.
func (s *Service) Upload(ctx context.Context, sessionID, name string, r io.Reader) (UploadOutcome, error) {
	log := logging.FromContext(ctx)
	name = filepath.Base(strings.TrimSpace(name))
	if r == nil || name == "" || name == "." {
		return UploadOutcome{}, ErrNoFile
	}
	if _, err := s.sessions.Get(sessionID); err != nil {
		return UploadOutcome{}, err
	}

	start := time.Now()
	var parsed *frame.Frame
	err := s.limiter.Do(ctx, func() error {
		f, err := ingest.Ingest(ctx, name, r, ingest.Options{MaxBytes: s.opts.MaxFileSize})
		parsed = f
		return err
	})
	if err != nil {
		log.Warn("upload rejected", "file", name, "error", err)
		return UploadOutcome{}, err
	}

	var out UploadOutcome
	var before int
	updated, err := s.sessions.Update(sessionID, func(sess *session.Session) error {
		if sess.HasTable() {
			before = sess.Table.Rows()
		}
		out.Replaced = !sess.HasTable() || sess.LastUploaded != name
		if out.Replaced {
			sess.Table = parsed
			sess.LastUploaded = name
		}
		return nil
	})
	if err != nil {
		return UploadOutcome{}, err
	}

	out.FileName = name
	out.Summary = profile.Summarize(updated.Table)
	log.Info("file uploaded",
		"file", name,
		"rows", out.Summary.Rows,
		"cols", out.Summary.Cols,
		"replaced", out.Replaced,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	detail := "replaced"
	if !out.Replaced {
		detail = "kept existing table"
	}
	s.record(ctx, audit.Entry{
		SessionID:  sessionID,
		Action:     audit.ActionUpload,
		FileName:   name,
		RowsBefore: before,
		RowsAfter:  out.Summary.Rows,
		Detail:     detail,
	})
	return out, nil
}

// Clean applies a cleaning action to the working table.
func (s *Service) Clean(ctx context.Context, sessionID, action string) (clean.Report, error) {
	a, err := clean.ParseAction(action)
	if err != nil {
		return clean.Report{}, err
	}

	var rep clean.Report
	updated, err := s.sessions.Update(sessionID, func(sess *session.Session) error {
		if !sess.HasTable() {
			return ErrNoTable
		}
		out, r, err := clean.Apply(sess.Table, a)
		if err != nil {
			return err
		}
		sess.Table = out
		rep = r
		return nil
	})
	if err != nil {
		return clean.Report{}, err
	}

	logging.FromContext(ctx).Info("table cleaned",
		"action", a,
		"rows_before", rep.RowsBefore,
		"rows_after", rep.RowsAfter,
		"cells_filled", rep.CellsFilled,
		"skipped_columns", rep.SkippedColumns,
	)
	s.record(ctx, audit.Entry{
		SessionID:  sessionID,
		Action:     audit.ActionClean,
		FileName:   updated.LastUploaded,
		RowsBefore: rep.RowsBefore,
		RowsAfter:  rep.RowsAfter,
		Detail:     string(a),
	})
	return rep, nil
}

// SetLanguage switches the session's UI language. The table is untouched.
func (s *Service) SetLanguage(ctx context.Context, sessionID, code string) (i18n.Code, error) {
	c, err := i18n.ParseCode(code)
	if err != nil {
		return "", err
	}
	if _, err := s.sessions.Update(sessionID, func(sess *session.Session) error {
		sess.Language = c
		return nil
	}); err != nil {
		return "", err
	}
	logging.FromContext(ctx).Debug("language changed", "language", c)
	s.record(ctx, audit.Entry{SessionID: sessionID, Action: audit.ActionLanguage, Detail: string(c)})
	return c, nil
}

// Chart renders one SVG chart of the working table to w.
func (s *Service) Chart(ctx context.Context, sessionID string, spec chart.Spec, w io.Writer) error {
	sess, err := s.tableSession(sessionID)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := chart.Render(&buf, sess.Table, spec, chart.Options{}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}

// ExportFile is an encoded working table ready for download.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Export encodes the working table in the given format.
func (s *Service) Export(ctx context.Context, sessionID string, format export.Format) (*ExportFile, error) {
	sess, err := s.tableSession(sessionID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, sess.Table, format); err != nil {
		return nil, fmt.Errorf("export %s: %w", format, err)
	}

	file := &ExportFile{
		Name:        export.FileName(sess.LastUploaded, format),
		ContentType: format.ContentType(),
		Data:        buf.Bytes(),
	}
	s.record(ctx, audit.Entry{
		SessionID:  sessionID,
		Action:     audit.ActionExport,
		FileName:   file.Name,
		RowsBefore: sess.Table.Rows(),
		RowsAfter:  sess.Table.Rows(),
		Detail:     string(format),
	})
	return file, nil
}

// Reset forgets the working table and the last uploaded file name.
func (s *Service) Reset(ctx context.Context, sessionID string) error {
	var before int
	var name string
	if _, err := s.sessions.Update(sessionID, func(sess *session.Session) error {
		if sess.HasTable() {
			before = sess.Table.Rows()
		}
		name = sess.LastUploaded
		sess.Table = nil
		sess.LastUploaded = ""
		return nil
	}); err != nil {
		return err
	}

	logging.FromContext(ctx).Info("table reset", "file", name)
	s.record(ctx, audit.Entry{
		SessionID:  sessionID,
		Action:     audit.ActionReset,
		FileName:   name,
		RowsBefore: before,
	})
	return nil
}

// Notify queues a one-shot notice for the session's next page.
func (s *Service) Notify(sessionID string, level session.FlashLevel, text string) {
	_, _ = s.sessions.Update(sessionID, func(sess *session.Session) error {
		sess.AddFlash(level, text)
		return nil
	})
}

// AuditLog returns the session's most recent audit entries.
func (s *Service) AuditLog(ctx context.Context, sessionID string, limit int) ([]audit.Entry, error) {
	return s.audit.Recent(ctx, sessionID, limit)
}

func (s *Service) tableSession(sessionID string) (session.Session, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return session.Session{}, err
	}
	if !sess.HasTable() {
		return session.Session{}, ErrNoTable
	}
	return sess, nil
}

// record writes an audit entry. Failures are logged and never surface to
// the user.
func (s *Service) record(ctx context.Context, e audit.Entry) {
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditTimeout)
	defer cancel()

	if err := s.audit.Record(rctx, e); err != nil {
		logging.FromContext(ctx).Error("audit record failed", "action", e.Action, "error", err)
	}
}
