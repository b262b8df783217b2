// ABOUTME: Append-only record of detected manipulation tactics per turn
// ABOUTME: Keyword lists use the same textual encoding as signal labels
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/decoyops/honeyledger/internal/models"
)

// TacticStore handles tactic persistence
type TacticStore struct {
	db  *DB
	now func() time.Time
}

// NewTacticStore creates a new TacticStore
func NewTacticStore(db *DB) *TacticStore {
	return &TacticStore{db: db, now: time.Now}
}

const tacticColumns = `id, session_id, tactic_type, tactic_description,
	detected_at_turn, message_text, keywords_used, threat_level, timestamp`

// Record appends one tactic row
func (s *TacticStore) Record(ctx context.Context, spec models.TacticSpec) (*models.ScammerTactic, error) {
	if spec.ThreatLevel == "" {
		spec.ThreatLevel = "medium"
	}

	keywords, err := encodeList(spec.KeywordsUsed)
	if err != nil {
		return nil, err
	}

	tactic := &models.ScammerTactic{
		ID:             uuid.New(),
		SessionID:      spec.SessionID,
		TacticType:     spec.TacticType,
		Description:    spec.Description,
		DetectedAtTurn: spec.DetectedAtTurn,
		MessageText:    spec.MessageText,
		KeywordsUsed:   spec.KeywordsUsed,
		ThreatLevel:    spec.ThreatLevel,
		Timestamp:      s.now().UTC(),
	}
	if tactic.KeywordsUsed == nil {
		tactic.KeywordsUsed = []string{}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO scammer_tactics (`+tacticColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, tactic.ID, tactic.SessionID, string(tactic.TacticType),
		nullable(tactic.Description), tactic.DetectedAtTurn, tactic.MessageText,
		keywords, tactic.ThreatLevel, tactic.Timestamp)
	if err != nil {
		return nil, classify(err)
	}

	return tactic, nil
}

// ForSession returns a session's tactics ordered by detection turn
func (s *TacticStore) ForSession(ctx context.Context, sessionID uuid.UUID) ([]models.ScammerTactic, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+tacticColumns+` FROM scammer_tactics
		WHERE session_id = ?
		ORDER BY detected_at_turn ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var tactics []models.ScammerTactic
	for rows.Next() {
		var (
			tactic      models.ScammerTactic
			description sql.NullString
			keywords    sql.NullString
		)
		err := rows.Scan(&tactic.ID, &tactic.SessionID, &tactic.TacticType,
			&description, &tactic.DetectedAtTurn, &tactic.MessageText,
			&keywords, &tactic.ThreatLevel, &tactic.Timestamp)
		if err != nil {
			return nil, err
		}
		if description.Valid {
			tactic.Description = &description.String
		}
		tactic.KeywordsUsed, err = decodeList(keywords)
		if err != nil {
			return nil, err
		}
		tactics = append(tactics, tactic)
	}

	return tactics, rows.Err()
}
