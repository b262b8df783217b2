// ABOUTME: Idempotent upsert store for extracted artifacts keyed by
// ABOUTME: (session, artifact type, artifact value); re-extraction confirms, never duplicates
package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/decoyops/honeyledger/internal/models"
)

// IntelligenceStore handles extracted-artifact persistence
type IntelligenceStore struct {
	db  *DB
	now func() time.Time
}

// NewIntelligenceStore creates a new IntelligenceStore
func NewIntelligenceStore(db *DB) *IntelligenceStore {
	return &IntelligenceStore{db: db, now: time.Now}
}

const intelligenceColumns = `id, session_id, artifact_type, artifact_value,
	extracted_from_message_id, extracted_at_turn, extraction_method,
	confirmed, confirmation_count, confidence_score, context_snippet, metadata,
	first_seen_at, last_seen_at`

// Extract inserts a candidate artifact or, when its natural key already
// exists in the session, atomically merges: confirmation_count goes up by
// one, confirmed flips true, and last_seen_at is refreshed. Every other
// column keeps its first-observation value. The single-statement upsert is
// what makes concurrent duplicate extraction race-free without a lock.
func (s *IntelligenceStore) Extract(ctx context.Context, spec models.IntelligenceSpec) (*models.ExtractedIntelligence, error) {
	if spec.ExtractionMethod == "" {
		spec.ExtractionMethod = "regex"
	}
	if spec.ConfidenceScore == 0 {
		spec.ConfidenceScore = 0.5
	}

	metadata, err := encodeMap(spec.Metadata)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO extracted_intelligence (`+intelligenceColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (session_id, artifact_type, artifact_value) DO UPDATE SET
			confirmation_count = extracted_intelligence.confirmation_count + 1,
			confirmed = TRUE,
			last_seen_at = excluded.last_seen_at
		RETURNING `+intelligenceColumns+`
	`, uuid.New(), spec.SessionID, string(spec.ArtifactType), spec.ArtifactValue,
		spec.ExtractedFromMsgID, spec.ExtractedAtTurn, spec.ExtractionMethod,
		false, 1, spec.ConfidenceScore, nullable(spec.ContextSnippet), metadata,
		now, now)

	intel, err := scanIntelligence(row)
	if err != nil {
		return nil, classify(err)
	}
	return intel, nil
}

// AllForSession returns every artifact for a session, earliest first
func (s *IntelligenceStore) AllForSession(ctx context.Context, sessionID uuid.UUID) ([]models.ExtractedIntelligence, error) {
	return s.query(ctx, `
		SELECT `+intelligenceColumns+` FROM extracted_intelligence
		WHERE session_id = ?
		ORDER BY first_seen_at ASC
	`, sessionID)
}

// Confirmed returns only confirmed artifacts, most corroborated first
func (s *IntelligenceStore) Confirmed(ctx context.Context, sessionID uuid.UUID) ([]models.ExtractedIntelligence, error) {
	return s.query(ctx, `
		SELECT `+intelligenceColumns+` FROM extracted_intelligence
		WHERE session_id = ? AND confirmed = TRUE
		ORDER BY confirmation_count DESC
	`, sessionID)
}

func (s *IntelligenceStore) query(ctx context.Context, q string, args ...any) ([]models.ExtractedIntelligence, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var artifacts []models.ExtractedIntelligence
	for rows.Next() {
		intel, err := scanIntelligence(rows)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, *intel)
	}

	return artifacts, rows.Err()
}

func scanIntelligence(row rowScanner) (*models.ExtractedIntelligence, error) {
	var (
		intel    models.ExtractedIntelligence
		snippet  sql.NullString
		metadata sql.NullString
	)

	err := row.Scan(&intel.ID, &intel.SessionID, &intel.ArtifactType,
		&intel.ArtifactValue, &intel.ExtractedFromMsgID, &intel.ExtractedAtTurn,
		&intel.ExtractionMethod, &intel.Confirmed, &intel.ConfirmationCount,
		&intel.ConfidenceScore, &snippet, &metadata,
		&intel.FirstSeenAt, &intel.LastSeenAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if snippet.Valid {
		intel.ContextSnippet = &snippet.String
	}
	intel.Metadata, err = decodeMap(metadata)
	if err != nil {
		return nil, err
	}

	return &intel, nil
}
