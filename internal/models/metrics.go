// ABOUTME: EvaluationMetrics scores a finished engagement, one row per session
// ABOUTME: Written once by the external evaluation collaborator
package models

import (
	"time"

	"github.com/google/uuid"
)

// EvaluationMetrics is the full persisted metrics record
type EvaluationMetrics struct {
	ID                           uuid.UUID `json:"id"`
	SessionID                    uuid.UUID `json:"session_id"`
	EngagementDepthScore         float64   `json:"engagement_depth_score"`
	ConversationNaturalnessScore float64   `json:"conversation_naturalness_score"`
	ExtractionEfficiency         float64   `json:"extraction_efficiency"`
	ScamDetectionConfidence      float64   `json:"scam_detection_confidence"`
	FalsePositiveRisk            float64   `json:"false_positive_risk"`
	AverageResponseDelay         float64   `json:"average_response_delay"`
	ToneDriftSmoothness          float64   `json:"tone_drift_smoothness"`
	StateTransitionCount         int       `json:"state_transition_count"`
	PrematureExits               int       `json:"premature_exits"`
	UniqueArtifactsExtracted     int       `json:"unique_artifacts_extracted"`
	ConfirmedArtifactsExtracted  int       `json:"confirmed_artifacts_extracted"`
	HighConfidenceArtifacts      int       `json:"high_confidence_artifacts"`
	TypoCount                    int       `json:"typo_count"`
	MessageTruncations           int       `json:"message_truncations"`
	Repetitions                  int       `json:"repetitions"`
	ClarificationQuestionsAsked  int       `json:"clarification_questions_asked"`
	OverallQualityScore          float64   `json:"overall_quality_score"`
	CalculatedAt                 time.Time `json:"calculated_at"`
}

// MetricsSpec is the request shape for recording evaluation metrics
type MetricsSpec struct {
	SessionID                    uuid.UUID `json:"session_id"`
	EngagementDepthScore         float64   `json:"engagement_depth_score"`
	ConversationNaturalnessScore float64   `json:"conversation_naturalness_score"`
	ExtractionEfficiency         float64   `json:"extraction_efficiency"`
	ScamDetectionConfidence      float64   `json:"scam_detection_confidence"`
	FalsePositiveRisk            float64   `json:"false_positive_risk"`
	AverageResponseDelay         float64   `json:"average_response_delay"`
	ToneDriftSmoothness          float64   `json:"tone_drift_smoothness"`
	StateTransitionCount         int       `json:"state_transition_count"`
	PrematureExits               int       `json:"premature_exits"`
	UniqueArtifactsExtracted     int       `json:"unique_artifacts_extracted"`
	ConfirmedArtifactsExtracted  int       `json:"confirmed_artifacts_extracted"`
	HighConfidenceArtifacts      int       `json:"high_confidence_artifacts"`
	TypoCount                    int       `json:"typo_count"`
	MessageTruncations           int       `json:"message_truncations"`
	Repetitions                  int       `json:"repetitions"`
	ClarificationQuestionsAsked  int       `json:"clarification_questions_asked"`
	OverallQualityScore          float64   `json:"overall_quality_score"`
}
