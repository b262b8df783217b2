// ABOUTME: Boundary envelopes exchanged with the surrounding platform
// ABOUTME: External field names are camelCase, distinct from persisted names
package models

// HistoryItem is a single message in the inbound conversation history
type HistoryItem struct {
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// IncomingMessage is the message object inside an inbound envelope
type IncomingMessage struct {
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// IncomingMessageRequest is the inbound envelope from the platform
type IncomingMessageRequest struct {
	SessionID           string          `json:"sessionId"`
	Message             IncomingMessage `json:"message"`
	ConversationHistory []HistoryItem   `json:"conversationHistory"`
	Metadata            map[string]any  `json:"metadata,omitempty"`
}

// AgentResponse is the reply envelope returned per turn
type AgentResponse struct {
	Status                string              `json:"status"`
	ScamDetected          bool                `json:"scamDetected"`
	AgentMessage          string              `json:"agentMessage,omitempty"`
	ShouldContinue        bool                `json:"shouldContinue"`
	ExtractedIntelligence map[string][]string `json:"extractedIntelligence,omitempty"`
	AgentNotes            string              `json:"agentNotes,omitempty"`
}

// FinalCallbackPayload is the end-of-session result callback
type FinalCallbackPayload struct {
	SessionID              string              `json:"sessionId"`
	ScamDetected           bool                `json:"scamDetected"`
	TotalMessagesExchanged int                 `json:"totalMessagesExchanged"`
	ExtractedIntelligence  map[string][]string `json:"extractedIntelligence"`
	AgentNotes             string              `json:"agentNotes"`
}
