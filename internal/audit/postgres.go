package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS datazen_audit_log (
    id          UUID PRIMARY KEY,
    session_id  TEXT NOT NULL,
    action      TEXT NOT NULL,
    severity    TEXT NOT NULL,
    file_name   TEXT NOT NULL DEFAULT '',
    rows_before INTEGER NOT NULL DEFAULT 0,
    rows_after  INTEGER NOT NULL DEFAULT 0,
    detail      TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS datazen_audit_log_session_idx
    ON datazen_audit_log (session_id, created_at DESC);
`

const insertSQL = `
INSERT INTO datazen_audit_log
    (id, session_id, action, severity, file_name, rows_before, rows_after, detail, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const recentSQL = `
SELECT id::text AS id, session_id, action, severity, file_name,
       rows_before, rows_after, detail, created_at
FROM datazen_audit_log
WHERE ($1::text = '' OR session_id = $1::text)
ORDER BY created_at DESC
LIMIT $2`

// PostgresRecorder stores entries in the datazen_audit_log table.
type PostgresRecorder struct {
	pool *pgxpool.Pool
}

// NewPostgresRecorder wraps an open pool.
func NewPostgresRecorder(pool *pgxpool.Pool) *PostgresRecorder {
	return &PostgresRecorder{pool: pool}
}

// EnsureSchema creates the audit table and index if they do not exist.
func (p *PostgresRecorder) EnsureSchema(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create audit schema: %w", err)
	}
	return nil
}

// Record implements Recorder.
func (p *PostgresRecorder) Record(ctx context.Context, e Entry) error {
	e = prepare(e, time.Now())
	id, err := uuid.Parse(e.ID)
	if err != nil {
		return fmt.Errorf("audit entry id: %w", err)
	}
	_, err = p.pool.Exec(ctx, insertSQL,
		id, e.SessionID, string(e.Action), string(e.Severity), e.FileName,
		e.RowsBefore, e.RowsAfter, e.Detail, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// Recent implements Recorder.
func (p *PostgresRecorder) Recent(ctx context.Context, sessionID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	rows, err := p.pool.Query(ctx, recentSQL, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[Entry])
	if err != nil {
		return nil, fmt.Errorf("scan audit log: %w", err)
	}
	return entries, nil
}
