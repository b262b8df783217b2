// ABOUTME: Builds the outward-facing intelligence mapping and callback payloads
// ABOUTME: Groups a session's artifacts by type label for the platform API
package report

import (
	"github.com/decoyops/honeyledger/internal/models"
)

// GroupArtifacts maps artifact-type labels to their distinct values,
// preserving the order the artifacts were first seen in.
func GroupArtifacts(artifacts []models.ExtractedIntelligence) map[string][]string {
	grouped := make(map[string][]string)
	seen := make(map[string]bool)

	for _, a := range artifacts {
		key := string(a.ArtifactType) + "\x00" + a.ArtifactValue
		if seen[key] {
			continue
		}
		seen[key] = true
		label := string(a.ArtifactType)
		grouped[label] = append(grouped[label], a.ArtifactValue)
	}

	return grouped
}

// BuildFinalCallback assembles the end-of-session callback payload
func BuildFinalCallback(sess *models.Session, artifacts []models.ExtractedIntelligence, notes string) models.FinalCallbackPayload {
	return models.FinalCallbackPayload{
		SessionID:              sess.SessionID,
		ScamDetected:           sess.ScamDetected,
		TotalMessagesExchanged: sess.TotalMessagesExchanged,
		ExtractedIntelligence:  GroupArtifacts(artifacts),
		AgentNotes:             notes,
	}
}

// BuildAgentResponse assembles the per-turn reply envelope
func BuildAgentResponse(sess *models.Session, message string, shouldContinue bool, artifacts []models.ExtractedIntelligence, notes string) models.AgentResponse {
	return models.AgentResponse{
		Status:                "success",
		ScamDetected:          sess.ScamDetected,
		AgentMessage:          message,
		ShouldContinue:        shouldContinue,
		ExtractedIntelligence: GroupArtifacts(artifacts),
		AgentNotes:            notes,
	}
}
