// ABOUTME: Session is one continuous engagement between the agent and a suspected scammer
// ABOUTME: Includes the create spec and the sparse update patch shape
package models

import (
	"time"

	"github.com/google/uuid"
)

// Channel is the messaging channel a session runs on
type Channel string

const (
	ChannelSMS      Channel = "SMS"
	ChannelWhatsApp Channel = "WhatsApp"
	ChannelEmail    Channel = "Email"
	ChannelChat     Channel = "Chat"
)

// SessionStatus is a session's lifecycle status
type SessionStatus string

const (
	StatusActive     SessionStatus = "active"
	StatusCompleted  SessionStatus = "completed"
	StatusTerminated SessionStatus = "terminated"
	StatusBurned     SessionStatus = "burned"
)

// ConversationState is the agent's position in the engagement arc
type ConversationState string

const (
	StateUnknown    ConversationState = "UNKNOWN"
	StateProbing    ConversationState = "PROBING"
	StateEngaging   ConversationState = "ENGAGING"
	StateDraining   ConversationState = "DRAINING"
	StateExiting    ConversationState = "EXITING"
	StateTerminated ConversationState = "TERMINATED"
)

// Persona is the cover identity the agent plays
type Persona string

const (
	PersonaElderlyUncle     Persona = "ELDERLY_UNCLE"
	PersonaBusyProfessional Persona = "BUSY_PROFESSIONAL"
)

// Session is the full persisted session record
type Session struct {
	ID                         uuid.UUID         `json:"id"`
	SessionID                  string            `json:"session_id"`
	Channel                    Channel           `json:"channel"`
	Language                   string            `json:"language"`
	Locale                     string            `json:"locale"`
	Persona                    Persona           `json:"persona"`
	InitialConfidence          float64           `json:"initial_confidence"`
	Status                     SessionStatus     `json:"status"`
	CurrentState               ConversationState `json:"current_state"`
	ScamDetected               bool              `json:"scam_detected"`
	FinalConfidence            *float64          `json:"final_confidence,omitempty"`
	ExposureRisk               *float64          `json:"exposure_risk,omitempty"`
	TotalMessagesExchanged     int               `json:"total_messages_exchanged"`
	EngagementDurationSeconds  int               `json:"engagement_duration_seconds"`
	IntelligenceExtractedCount int               `json:"intelligence_extracted_count"`
	CreatedAt                  time.Time         `json:"created_at"`
	UpdatedAt                  time.Time         `json:"updated_at"`
	CompletedAt                *time.Time        `json:"completed_at,omitempty"`
	CallbackSent               bool              `json:"callback_sent"`
	CallbackSentAt             *time.Time        `json:"callback_sent_at,omitempty"`
	CallbackResponse           map[string]any    `json:"callback_response,omitempty"`
}

// SessionSpec is the request shape for creating a new session.
// Zero-valued fields fall back to the engagement defaults.
type SessionSpec struct {
	SessionID         string            `json:"session_id"`
	Channel           Channel           `json:"channel"`
	Language          string            `json:"language"`
	Locale            string            `json:"locale"`
	Persona           Persona           `json:"persona"`
	InitialConfidence float64           `json:"initial_confidence"`
	InitialState      ConversationState `json:"initial_state"`
}

// SessionPatch is a sparse update: nil fields are left untouched.
// The set of updatable columns is the fixed allow-list in the store,
// never derived from caller-supplied keys.
type SessionPatch struct {
	CurrentState              *ConversationState `json:"current_state,omitempty"`
	Status                    *SessionStatus     `json:"status,omitempty"`
	ScamDetected              *bool              `json:"scam_detected,omitempty"`
	FinalConfidence           *float64           `json:"final_confidence,omitempty"`
	ExposureRisk              *float64           `json:"exposure_risk,omitempty"`
	TotalMessagesExchanged    *int               `json:"total_messages_exchanged,omitempty"`
	EngagementDurationSeconds *int               `json:"engagement_duration_seconds,omitempty"`
	IntelligenceCount         *int               `json:"intelligence_extracted_count,omitempty"`
	CompletedAt               *time.Time         `json:"completed_at,omitempty"`
	CallbackSent              *bool              `json:"callback_sent,omitempty"`
	CallbackSentAt            *time.Time         `json:"callback_sent_at,omitempty"`
	CallbackResponse          map[string]any     `json:"callback_response,omitempty"`
}

// IsZero reports whether the patch carries no fields at all
func (p SessionPatch) IsZero() bool {
	return p.CurrentState == nil &&
		p.Status == nil &&
		p.ScamDetected == nil &&
		p.FinalConfidence == nil &&
		p.ExposureRisk == nil &&
		p.TotalMessagesExchanged == nil &&
		p.EngagementDurationSeconds == nil &&
		p.IntelligenceCount == nil &&
		p.CompletedAt == nil &&
		p.CallbackSent == nil &&
		p.CallbackSentAt == nil &&
		p.CallbackResponse == nil
}
