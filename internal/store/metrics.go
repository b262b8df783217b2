// ABOUTME: Evaluation metrics, one row per session, written once
// ABOUTME: A second write for the same session yields ErrConstraint
package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/decoyops/honeyledger/internal/models"
)

// MetricsStore handles evaluation-metrics persistence
type MetricsStore struct {
	db  *DB
	now func() time.Time
}

// NewMetricsStore creates a new MetricsStore
func NewMetricsStore(db *DB) *MetricsStore {
	return &MetricsStore{db: db, now: time.Now}
}

const metricsColumns = `id, session_id,
	engagement_depth_score, conversation_naturalness_score, extraction_efficiency,
	scam_detection_confidence, false_positive_risk, average_response_delay,
	tone_drift_smoothness, state_transition_count, premature_exits,
	unique_artifacts_extracted, confirmed_artifacts_extracted, high_confidence_artifacts,
	typo_count, message_truncations, repetitions, clarification_questions_asked,
	overall_quality_score, calculated_at`

// Record inserts the session's metrics row
func (s *MetricsStore) Record(ctx context.Context, spec models.MetricsSpec) (*models.EvaluationMetrics, error) {
	m := &models.EvaluationMetrics{
		ID:                           uuid.New(),
		SessionID:                    spec.SessionID,
		EngagementDepthScore:         spec.EngagementDepthScore,
		ConversationNaturalnessScore: spec.ConversationNaturalnessScore,
		ExtractionEfficiency:         spec.ExtractionEfficiency,
		ScamDetectionConfidence:      spec.ScamDetectionConfidence,
		FalsePositiveRisk:            spec.FalsePositiveRisk,
		AverageResponseDelay:         spec.AverageResponseDelay,
		ToneDriftSmoothness:          spec.ToneDriftSmoothness,
		StateTransitionCount:         spec.StateTransitionCount,
		PrematureExits:               spec.PrematureExits,
		UniqueArtifactsExtracted:     spec.UniqueArtifactsExtracted,
		ConfirmedArtifactsExtracted:  spec.ConfirmedArtifactsExtracted,
		HighConfidenceArtifacts:      spec.HighConfidenceArtifacts,
		TypoCount:                    spec.TypoCount,
		MessageTruncations:           spec.MessageTruncations,
		Repetitions:                  spec.Repetitions,
		ClarificationQuestionsAsked:  spec.ClarificationQuestionsAsked,
		OverallQualityScore:          spec.OverallQualityScore,
		CalculatedAt:                 s.now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO evaluation_metrics (`+metricsColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.SessionID, m.EngagementDepthScore, m.ConversationNaturalnessScore,
		m.ExtractionEfficiency, m.ScamDetectionConfidence, m.FalsePositiveRisk,
		m.AverageResponseDelay, m.ToneDriftSmoothness, m.StateTransitionCount,
		m.PrematureExits, m.UniqueArtifactsExtracted, m.ConfirmedArtifactsExtracted,
		m.HighConfidenceArtifacts, m.TypoCount, m.MessageTruncations,
		m.Repetitions, m.ClarificationQuestionsAsked, m.OverallQualityScore,
		m.CalculatedAt)
	if err != nil {
		return nil, classify(err)
	}

	return m, nil
}

// ForSession returns the session's metrics row, or nil when absent
func (s *MetricsStore) ForSession(ctx context.Context, sessionID uuid.UUID) (*models.EvaluationMetrics, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+metricsColumns+` FROM evaluation_metrics WHERE session_id = ?
	`, sessionID)

	var m models.EvaluationMetrics
	err := row.Scan(&m.ID, &m.SessionID, &m.EngagementDepthScore,
		&m.ConversationNaturalnessScore, &m.ExtractionEfficiency,
		&m.ScamDetectionConfidence, &m.FalsePositiveRisk, &m.AverageResponseDelay,
		&m.ToneDriftSmoothness, &m.StateTransitionCount, &m.PrematureExits,
		&m.UniqueArtifactsExtracted, &m.ConfirmedArtifactsExtracted,
		&m.HighConfidenceArtifacts, &m.TypoCount, &m.MessageTruncations,
		&m.Repetitions, &m.ClarificationQuestionsAsked, &m.OverallQualityScore,
		&m.CalculatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &m, nil
}
