// ABOUTME: Tests for the structured system event log
// ABOUTME: BestEffort must swallow write failures entirely

package store

import (
	"context"
	"testing"
	"time"

	"github.com/decoyops/honeyledger/internal/models"
)

func TestLogAppendAndForSession(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	sess := mustCreateSession(t, st, "log-rt")

	clock := &fixedClock{t: testTime()}
	st.Logs.now = clock.now

	err := st.Logs.Append(ctx, models.LogEntry{
		SessionID: &sess.ID,
		Level:     models.LevelInfo,
		Component: "extraction",
		EventType: "artifact_found",
		Message:   "upi id extracted",
		Details:   map[string]any{"artifact_type": "upi_id"},
	})
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	clock.advance(time.Second)
	err = st.Logs.Append(ctx, models.LogEntry{
		SessionID: &sess.ID,
		Level:     models.LevelWarning,
		Component: "state_machine",
		EventType: "risk_spike",
		Message:   "exposure risk jumped",
	})
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	entries, err := st.Logs.ForSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("ForSession() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ForSession() returned %d entries, want 2", len(entries))
	}
	if entries[0].EventType != "artifact_found" || entries[1].EventType != "risk_spike" {
		t.Errorf("ForSession() order = [%s, %s]", entries[0].EventType, entries[1].EventType)
	}
	if entries[0].Details["artifact_type"] != "upi_id" {
		t.Errorf("Details = %v, want artifact_type=upi_id", entries[0].Details)
	}
	if entries[0].SessionID == nil || *entries[0].SessionID != sess.ID {
		t.Error("SessionID not persisted")
	}
}

func TestLogAppendWithoutSession(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	err := st.Logs.Append(ctx, models.LogEntry{
		Level:     models.LevelError,
		Component: "callback",
		EventType: "delivery_failed",
		Message:   "guvnor unreachable",
	})
	if err != nil {
		t.Fatalf("Append() without session error = %v", err)
	}
}

func TestLogBestEffortSwallowsFailure(t *testing.T) {
	st := newTestStore(t)

	// Closing the database forces every subsequent write to fail
	if err := st.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	st.Logs.BestEffort(context.Background(), models.LogEntry{
		Level:     models.LevelInfo,
		Component: "session",
		EventType: "created",
		Message:   "this write cannot land",
	})
}
