// ABOUTME: Append-only message ledger, ordered per session by turn number
// ABOUTME: Turn numbers are caller-assigned; no gap or duplicate detection here
package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/decoyops/honeyledger/internal/models"
)

// DefaultHistoryLimit caps history reads when the caller does not
const DefaultHistoryLimit = 50

// MessageStore handles message persistence
type MessageStore struct {
	db  *DB
	now func() time.Time
}

// NewMessageStore creates a new MessageStore
func NewMessageStore(db *DB) *MessageStore {
	return &MessageStore{db: db, now: time.Now}
}

const messageColumns = `id, session_id, sender, text, turn_number, timestamp,
	response_delay_seconds, raw_llm_response, final_response,
	state_at_message, confidence_at_message, exposure_risk_at_message, created_at`

// Append inserts one message row. A zero spec timestamp takes the server
// clock; the caller may override it.
func (s *MessageStore) Append(ctx context.Context, spec models.MessageSpec) (*models.Message, error) {
	now := s.now().UTC()
	ts := spec.Timestamp
	if ts.IsZero() {
		ts = now
	} else {
		ts = ts.UTC()
	}

	msg := &models.Message{
		ID:                    uuid.New(),
		SessionID:             spec.SessionID,
		Sender:                spec.Sender,
		Text:                  spec.Text,
		TurnNumber:            spec.TurnNumber,
		Timestamp:             ts,
		ResponseDelaySeconds:  spec.ResponseDelaySeconds,
		RawResponse:           spec.RawResponse,
		FinalResponse:         spec.FinalResponse,
		StateAtMessage:        spec.StateAtMessage,
		ConfidenceAtMessage:   spec.ConfidenceAtMessage,
		ExposureRiskAtMessage: spec.ExposureRiskAtMessage,
		CreatedAt:             now,
	}

	var stateAt any
	if msg.StateAtMessage != nil {
		stateAt = string(*msg.StateAtMessage)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO messages (`+messageColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, msg.ID, msg.SessionID, string(msg.Sender), msg.Text, msg.TurnNumber,
		msg.Timestamp, nullable(msg.ResponseDelaySeconds), nullable(msg.RawResponse),
		nullable(msg.FinalResponse), stateAt, nullable(msg.ConfidenceAtMessage),
		nullable(msg.ExposureRiskAtMessage), msg.CreatedAt)
	if err != nil {
		return nil, classify(err)
	}

	return msg, nil
}

// History returns a session's messages ordered by turn_number ascending,
// capped at limit (DefaultHistoryLimit when limit <= 0).
func (s *MessageStore) History(ctx context.Context, sessionID uuid.UUID, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+messageColumns+` FROM messages
		WHERE session_id = ?
		ORDER BY turn_number ASC
		LIMIT ?
	`, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var messages []models.Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, *msg)
	}

	return messages, rows.Err()
}

// LastAgentMessage returns the most recent agent-side message, or nil
func (s *MessageStore) LastAgentMessage(ctx context.Context, sessionID uuid.UUID) (*models.Message, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+messageColumns+` FROM messages
		WHERE session_id = ? AND sender = ?
		ORDER BY turn_number DESC
		LIMIT 1
	`, sessionID, string(models.SenderAgent))
	return scanMessage(row)
}

func scanMessage(row rowScanner) (*models.Message, error) {
	var (
		msg           models.Message
		responseDelay sql.NullInt64
		rawResponse   sql.NullString
		finalResponse sql.NullString
		stateAt       sql.NullString
		confidenceAt  sql.NullFloat64
		exposureAt    sql.NullFloat64
	)

	err := row.Scan(&msg.ID, &msg.SessionID, &msg.Sender, &msg.Text,
		&msg.TurnNumber, &msg.Timestamp, &responseDelay, &rawResponse,
		&finalResponse, &stateAt, &confidenceAt, &exposureAt, &msg.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if responseDelay.Valid {
		delay := int(responseDelay.Int64)
		msg.ResponseDelaySeconds = &delay
	}
	if rawResponse.Valid {
		msg.RawResponse = &rawResponse.String
	}
	if finalResponse.Valid {
		msg.FinalResponse = &finalResponse.String
	}
	if stateAt.Valid {
		state := models.ConversationState(stateAt.String)
		msg.StateAtMessage = &state
	}
	if confidenceAt.Valid {
		msg.ConfidenceAtMessage = &confidenceAt.Float64
	}
	if exposureAt.Valid {
		msg.ExposureRiskAtMessage = &exposureAt.Float64
	}

	return &msg, nil
}

// nullable maps a nil pointer to a SQL NULL and dereferences otherwise
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
