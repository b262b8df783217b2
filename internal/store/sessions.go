// ABOUTME: Session persistence: create, lookups, sparse updates, active listing
// ABOUTME: The update path writes only an enumerated allow-list of columns
package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/decoyops/honeyledger/internal/models"
)

// SessionStore handles session persistence
type SessionStore struct {
	db  *DB
	now func() time.Time
}

// NewSessionStore creates a new SessionStore
func NewSessionStore(db *DB) *SessionStore {
	return &SessionStore{db: db, now: time.Now}
}

const sessionColumns = `id, session_id, channel, language, locale, persona,
	initial_confidence, status, current_state, scam_detected,
	final_confidence, exposure_risk, total_messages_exchanged,
	engagement_duration_seconds, intelligence_extracted_count,
	created_at, updated_at, completed_at,
	callback_sent, callback_sent_at, callback_response`

// Create inserts a new session with status=active and returns the persisted
// record. A session identifier already in use yields ErrConstraint.
func (s *SessionStore) Create(ctx context.Context, spec models.SessionSpec) (*models.Session, error) {
	if spec.Channel == "" {
		spec.Channel = models.ChannelSMS
	}
	if spec.Language == "" {
		spec.Language = "en"
	}
	if spec.Locale == "" {
		spec.Locale = "IN"
	}
	if spec.Persona == "" {
		spec.Persona = models.PersonaElderlyUncle
	}
	if spec.InitialState == "" {
		spec.InitialState = models.StateUnknown
	}

	now := s.now().UTC()
	sess := &models.Session{
		ID:                uuid.New(),
		SessionID:         spec.SessionID,
		Channel:           spec.Channel,
		Language:          spec.Language,
		Locale:            spec.Locale,
		Persona:           spec.Persona,
		InitialConfidence: spec.InitialConfidence,
		Status:            models.StatusActive,
		CurrentState:      spec.InitialState,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (`+sessionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, sess.ID, sess.SessionID, string(sess.Channel), sess.Language, sess.Locale,
		string(sess.Persona), sess.InitialConfidence, string(sess.Status),
		string(sess.CurrentState), sess.ScamDetected, nil, nil,
		0, 0, 0, sess.CreatedAt, sess.UpdatedAt, nil, false, nil, nil)
	if err != nil {
		return nil, classify(err)
	}

	return sess, nil
}

// GetBySessionID returns the session with the caller-supplied identifier,
// or nil when absent.
func (s *SessionStore) GetBySessionID(ctx context.Context, sessionID string) (*models.Session, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+sessionColumns+` FROM sessions WHERE session_id = ?
	`, sessionID)
	return scanSession(row)
}

// GetByID returns the session with the generated internal id, or nil when absent
func (s *SessionStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+sessionColumns+` FROM sessions WHERE id = ?
	`, id)
	return scanSession(row)
}

// Update applies only the fields present in the patch and returns the
// post-update record. An empty patch degrades to a pure read. A missing
// session returns nil like the getters.
func (s *SessionStore) Update(ctx context.Context, sessionID string, patch models.SessionPatch) (*models.Session, error) {
	if patch.IsZero() {
		return s.GetBySessionID(ctx, sessionID)
	}

	// Fixed allow-list of updatable columns. Caller-supplied keys never
	// reach the statement text.
	set := make([]string, 0, 13)
	args := make([]any, 0, 14)
	add := func(col string, v any) {
		set = append(set, col+" = ?")
		args = append(args, v)
	}

	if patch.CurrentState != nil {
		add("current_state", string(*patch.CurrentState))
	}
	if patch.Status != nil {
		add("status", string(*patch.Status))
	}
	if patch.ScamDetected != nil {
		add("scam_detected", *patch.ScamDetected)
	}
	if patch.FinalConfidence != nil {
		add("final_confidence", *patch.FinalConfidence)
	}
	if patch.ExposureRisk != nil {
		add("exposure_risk", *patch.ExposureRisk)
	}
	if patch.TotalMessagesExchanged != nil {
		add("total_messages_exchanged", *patch.TotalMessagesExchanged)
	}
	if patch.EngagementDurationSeconds != nil {
		add("engagement_duration_seconds", *patch.EngagementDurationSeconds)
	}
	if patch.IntelligenceCount != nil {
		add("intelligence_extracted_count", *patch.IntelligenceCount)
	}
	if patch.CompletedAt != nil {
		add("completed_at", patch.CompletedAt.UTC())
	}
	if patch.CallbackSent != nil {
		add("callback_sent", *patch.CallbackSent)
	}
	if patch.CallbackSentAt != nil {
		add("callback_sent_at", patch.CallbackSentAt.UTC())
	}
	if patch.CallbackResponse != nil {
		enc, err := encodeMap(patch.CallbackResponse)
		if err != nil {
			return nil, err
		}
		add("callback_response", enc)
	}
	add("updated_at", s.now().UTC())

	args = append(args, sessionID)
	res, err := s.db.ExecContext(ctx,
		"UPDATE sessions SET "+strings.Join(set, ", ")+" WHERE session_id = ?",
		args...)
	if err != nil {
		return nil, classify(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, nil
	}

	return s.GetBySessionID(ctx, sessionID)
}

// ListActive returns all active sessions, most recently created first
func (s *SessionStore) ListActive(ctx context.Context) ([]models.Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+sessionColumns+` FROM sessions
		WHERE status = ?
		ORDER BY created_at DESC
	`, string(models.StatusActive))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var sessions []models.Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *sess)
	}

	return sessions, rows.Err()
}

// rowScanner covers *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*models.Session, error) {
	var (
		sess             models.Session
		finalConfidence  sql.NullFloat64
		exposureRisk     sql.NullFloat64
		completedAt      sql.NullTime
		callbackSentAt   sql.NullTime
		callbackResponse sql.NullString
	)

	err := row.Scan(&sess.ID, &sess.SessionID, &sess.Channel, &sess.Language,
		&sess.Locale, &sess.Persona, &sess.InitialConfidence, &sess.Status,
		&sess.CurrentState, &sess.ScamDetected, &finalConfidence, &exposureRisk,
		&sess.TotalMessagesExchanged, &sess.EngagementDurationSeconds,
		&sess.IntelligenceExtractedCount, &sess.CreatedAt, &sess.UpdatedAt,
		&completedAt, &sess.CallbackSent, &callbackSentAt, &callbackResponse)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if finalConfidence.Valid {
		sess.FinalConfidence = &finalConfidence.Float64
	}
	if exposureRisk.Valid {
		sess.ExposureRisk = &exposureRisk.Float64
	}
	if completedAt.Valid {
		sess.CompletedAt = &completedAt.Time
	}
	if callbackSentAt.Valid {
		sess.CallbackSentAt = &callbackSentAt.Time
	}
	sess.CallbackResponse, err = decodeMap(callbackResponse)
	if err != nil {
		return nil, err
	}

	return &sess, nil
}
