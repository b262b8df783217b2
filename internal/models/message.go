// ABOUTME: Message is one turn of the conversation, scammer or agent side
// ABOUTME: Append-only; turn numbering is caller-authoritative
package models

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies which side authored a message
type Sender string

const (
	SenderScammer Sender = "scammer"
	SenderAgent   Sender = "agent"
)

// Message is the full persisted message record
type Message struct {
	ID                    uuid.UUID          `json:"id"`
	SessionID             uuid.UUID          `json:"session_id"`
	Sender                Sender             `json:"sender"`
	Text                  string             `json:"text"`
	TurnNumber            int                `json:"turn_number"`
	Timestamp             time.Time          `json:"timestamp"`
	ResponseDelaySeconds  *int               `json:"response_delay_seconds,omitempty"`
	RawResponse           *string            `json:"raw_llm_response,omitempty"`
	FinalResponse         *string            `json:"final_response,omitempty"`
	StateAtMessage        *ConversationState `json:"state_at_message,omitempty"`
	ConfidenceAtMessage   *float64           `json:"confidence_at_message,omitempty"`
	ExposureRiskAtMessage *float64           `json:"exposure_risk_at_message,omitempty"`
	CreatedAt             time.Time          `json:"created_at"`
}

// MessageSpec is the request shape for appending a message.
// A zero Timestamp means "now".
type MessageSpec struct {
	SessionID             uuid.UUID          `json:"session_id"`
	Sender                Sender             `json:"sender"`
	Text                  string             `json:"text"`
	TurnNumber            int                `json:"turn_number"`
	Timestamp             time.Time          `json:"timestamp"`
	ResponseDelaySeconds  *int               `json:"response_delay_seconds,omitempty"`
	RawResponse           *string            `json:"raw_llm_response,omitempty"`
	FinalResponse         *string            `json:"final_response,omitempty"`
	StateAtMessage        *ConversationState `json:"state_at_message,omitempty"`
	ConfidenceAtMessage   *float64           `json:"confidence_at_message,omitempty"`
	ExposureRiskAtMessage *float64           `json:"exposure_risk_at_message,omitempty"`
}
