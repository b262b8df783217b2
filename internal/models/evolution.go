// ABOUTME: StateEvolution is the per-turn snapshot of conversation state and scoring
// ABOUTME: Carries the five-dimensional tone vector and detected signal labels
package models

import (
	"time"

	"github.com/google/uuid"
)

// StateEvolution is one append-only row per turn.
// SignalsDetected is never nil after a read; an absent list comes back empty.
type StateEvolution struct {
	ID                      uuid.UUID          `json:"id"`
	SessionID               uuid.UUID          `json:"session_id"`
	MessageID               uuid.UUID          `json:"message_id"`
	TurnNumber              int                `json:"turn_number"`
	PreviousState           *ConversationState `json:"previous_state,omitempty"`
	CurrentState            ConversationState  `json:"current_state"`
	StateTransitionOccurred bool               `json:"state_transition_occurred"`
	TurnsInCurrentState     int                `json:"turns_in_current_state"`
	PreviousConfidence      *float64           `json:"previous_confidence,omitempty"`
	CurrentConfidence       float64            `json:"current_confidence"`
	ConfidenceDelta         *float64           `json:"confidence_delta,omitempty"`
	ConfidenceTrend         *string            `json:"confidence_trend,omitempty"`
	ExposureRisk            float64            `json:"exposure_risk"`
	ExposureDelta           *float64           `json:"exposure_delta,omitempty"`
	ToneConfusion           *float64           `json:"tone_confusion,omitempty"`
	ToneAnxiety             *float64           `json:"tone_anxiety,omitempty"`
	ToneUrgency             *float64           `json:"tone_urgency,omitempty"`
	ToneCompliance          *float64           `json:"tone_compliance,omitempty"`
	ToneCognitiveLoad       *float64           `json:"tone_cognitive_load,omitempty"`
	DriftRate               *float64           `json:"drift_rate,omitempty"`
	Initiative              *float64           `json:"initiative,omitempty"`
	SignalsDetected         []string           `json:"signals_detected"`
	Timestamp               time.Time          `json:"timestamp"`
}

// EvolutionSpec is the request shape for recording a state evolution row
type EvolutionSpec struct {
	SessionID               uuid.UUID          `json:"session_id"`
	MessageID               uuid.UUID          `json:"message_id"`
	TurnNumber              int                `json:"turn_number"`
	PreviousState           *ConversationState `json:"previous_state,omitempty"`
	CurrentState            ConversationState  `json:"current_state"`
	StateTransitionOccurred bool               `json:"state_transition_occurred"`
	TurnsInCurrentState     int                `json:"turns_in_current_state"`
	PreviousConfidence      *float64           `json:"previous_confidence,omitempty"`
	CurrentConfidence       float64            `json:"current_confidence"`
	ConfidenceDelta         *float64           `json:"confidence_delta,omitempty"`
	ConfidenceTrend         *string            `json:"confidence_trend,omitempty"`
	ExposureRisk            float64            `json:"exposure_risk"`
	ExposureDelta           *float64           `json:"exposure_delta,omitempty"`
	ToneConfusion           *float64           `json:"tone_confusion,omitempty"`
	ToneAnxiety             *float64           `json:"tone_anxiety,omitempty"`
	ToneUrgency             *float64           `json:"tone_urgency,omitempty"`
	ToneCompliance          *float64           `json:"tone_compliance,omitempty"`
	ToneCognitiveLoad       *float64           `json:"tone_cognitive_load,omitempty"`
	DriftRate               *float64           `json:"drift_rate,omitempty"`
	Initiative              *float64           `json:"initiative,omitempty"`
	SignalsDetected         []string           `json:"signals_detected"`
}
