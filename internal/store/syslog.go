// ABOUTME: Append-only structured event log, optionally session-scoped
// ABOUTME: BestEffort never propagates failure into the caller's primary operation
package store

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/decoyops/honeyledger/internal/models"
)

// LogStore handles system-log persistence
type LogStore struct {
	db  *DB
	now func() time.Time
}

// NewLogStore creates a new LogStore
func NewLogStore(db *DB) *LogStore {
	return &LogStore{db: db, now: time.Now}
}

// Append writes one structured event row
func (s *LogStore) Append(ctx context.Context, entry models.LogEntry) error {
	details, err := encodeMap(entry.Details)
	if err != nil {
		return err
	}

	var sessionID any
	if entry.SessionID != nil {
		sessionID = *entry.SessionID
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO system_logs (id, session_id, log_level, component, event_type, message, details, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.New(), sessionID, string(entry.Level), entry.Component,
		entry.EventType, entry.Message, details, s.now().UTC())
	return classify(err)
}

// BestEffort writes an event and swallows any failure; a telemetry write
// must never fail the session/message/intelligence write it accompanies.
func (s *LogStore) BestEffort(ctx context.Context, entry models.LogEntry) {
	if err := s.Append(ctx, entry); err != nil {
		log.Printf("[LogStore] best-effort log write failed: %v", err)
	}
}

// ForSession returns a session's events in insertion order
func (s *LogStore) ForSession(ctx context.Context, sessionID uuid.UUID) ([]models.SystemLog, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, log_level, component, event_type, message, details, timestamp
		FROM system_logs
		WHERE session_id = ?
		ORDER BY timestamp ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []models.SystemLog
	for rows.Next() {
		var (
			entry     models.SystemLog
			sessionID uuid.NullUUID
			details   sql.NullString
		)
		err := rows.Scan(&entry.ID, &sessionID, &entry.Level, &entry.Component,
			&entry.EventType, &entry.Message, &details, &entry.Timestamp)
		if err != nil {
			return nil, err
		}
		if sessionID.Valid {
			entry.SessionID = &sessionID.UUID
		}
		entry.Details, err = decodeMap(details)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
