// ABOUTME: ScammerTactic records a manipulation tactic detected at a turn
// ABOUTME: Append-only; keyword lists come back empty, never nil
package models

import (
	"time"

	"github.com/google/uuid"
)

// TacticType classifies a detected manipulation tactic
type TacticType string

const (
	TacticUrgencyPressure  TacticType = "urgency_pressure"
	TacticAuthorityClaim   TacticType = "authority_claim"
	TacticPaymentRedirect  TacticType = "payment_redirect"
	TacticAccountThreat    TacticType = "account_threat"
	TacticVerificationScam TacticType = "verification_scam"
)

// ScammerTactic is the full persisted tactic record
type ScammerTactic struct {
	ID             uuid.UUID  `json:"id"`
	SessionID      uuid.UUID  `json:"session_id"`
	TacticType     TacticType `json:"tactic_type"`
	Description    *string    `json:"tactic_description,omitempty"`
	DetectedAtTurn int        `json:"detected_at_turn"`
	MessageText    string     `json:"message_text"`
	KeywordsUsed   []string   `json:"keywords_used"`
	ThreatLevel    string     `json:"threat_level"`
	Timestamp      time.Time  `json:"timestamp"`
}

// TacticSpec is the request shape for recording a tactic.
// An empty ThreatLevel defaults to "medium".
type TacticSpec struct {
	SessionID      uuid.UUID  `json:"session_id"`
	TacticType     TacticType `json:"tactic_type"`
	Description    *string    `json:"tactic_description,omitempty"`
	DetectedAtTurn int        `json:"detected_at_turn"`
	MessageText    string     `json:"message_text"`
	KeywordsUsed   []string   `json:"keywords_used,omitempty"`
	ThreatLevel    string     `json:"threat_level"`
}
