// ABOUTME: SystemLog is a durable structured event, optionally session-scoped
// ABOUTME: Written best-effort; never allowed to fail a primary operation
package models

import (
	"time"

	"github.com/google/uuid"
)

// LogLevel is the severity of a system log event
type LogLevel string

const (
	LevelDebug    LogLevel = "DEBUG"
	LevelInfo     LogLevel = "INFO"
	LevelWarning  LogLevel = "WARNING"
	LevelError    LogLevel = "ERROR"
	LevelCritical LogLevel = "CRITICAL"
)

// SystemLog is the full persisted log record
type SystemLog struct {
	ID        uuid.UUID      `json:"id"`
	SessionID *uuid.UUID     `json:"session_id,omitempty"`
	Level     LogLevel       `json:"log_level"`
	Component string         `json:"component"`
	EventType string         `json:"event_type"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// LogEntry is the request shape for appending a system log event
type LogEntry struct {
	SessionID *uuid.UUID     `json:"session_id,omitempty"`
	Level     LogLevel       `json:"log_level"`
	Component string         `json:"component"`
	EventType string         `json:"event_type"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
}
