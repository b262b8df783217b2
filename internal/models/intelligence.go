// ABOUTME: ExtractedIntelligence is a deduplicated artifact pulled from scammer text
// ABOUTME: Natural key is (session, artifact type, artifact value); re-extraction confirms
package models

import (
	"time"

	"github.com/google/uuid"
)

// ArtifactType classifies an extracted artifact
type ArtifactType string

const (
	ArtifactUPIID             ArtifactType = "upi_id"
	ArtifactBankAccount       ArtifactType = "bank_account"
	ArtifactPhoneNumber       ArtifactType = "phone_number"
	ArtifactPhishingLink      ArtifactType = "phishing_link"
	ArtifactSuspiciousKeyword ArtifactType = "suspicious_keyword"
)

// ExtractedIntelligence is the full persisted artifact record
type ExtractedIntelligence struct {
	ID                 uuid.UUID      `json:"id"`
	SessionID          uuid.UUID      `json:"session_id"`
	ArtifactType       ArtifactType   `json:"artifact_type"`
	ArtifactValue      string         `json:"artifact_value"`
	ExtractedFromMsgID uuid.UUID      `json:"extracted_from_message_id"`
	ExtractedAtTurn    int            `json:"extracted_at_turn"`
	ExtractionMethod   string         `json:"extraction_method"`
	Confirmed          bool           `json:"confirmed"`
	ConfirmationCount  int            `json:"confirmation_count"`
	ConfidenceScore    float64        `json:"confidence_score"`
	FirstSeenAt        time.Time      `json:"first_seen_at"`
	LastSeenAt         time.Time      `json:"last_seen_at"`
	ContextSnippet     *string        `json:"context_snippet,omitempty"`
	Metadata           map[string]any `json:"metadata,omitempty"`
}

// IntelligenceSpec is a candidate artifact from the detection layer.
// An empty ExtractionMethod defaults to "regex" and a zero ConfidenceScore
// defaults to 0.5; the stored values are frozen on first insertion and a
// later re-extraction never overwrites them.
type IntelligenceSpec struct {
	SessionID          uuid.UUID      `json:"session_id"`
	ArtifactType       ArtifactType   `json:"artifact_type"`
	ArtifactValue      string         `json:"artifact_value"`
	ExtractedFromMsgID uuid.UUID      `json:"extracted_from_message_id"`
	ExtractedAtTurn    int            `json:"extracted_at_turn"`
	ExtractionMethod   string         `json:"extraction_method"`
	ConfidenceScore    float64        `json:"confidence_score"`
	ContextSnippet     *string        `json:"context_snippet,omitempty"`
	Metadata           map[string]any `json:"metadata,omitempty"`
}
