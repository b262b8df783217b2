// ABOUTME: Tests for session create, lookup, sparse update, and active listing
// ABOUTME: Exercises default filling, duplicate detection, and patch isolation

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/decoyops/honeyledger/internal/models"
)

func TestSessionCreateDefaults(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	sess, err := st.Sessions.Create(ctx, models.SessionSpec{
		SessionID:         "wa-msg-81723",
		InitialConfidence: 0.35,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if sess.ID == uuid.Nil {
		t.Error("Create() left internal id unset")
	}
	if sess.Channel != models.ChannelSMS {
		t.Errorf("Channel = %q, want %q", sess.Channel, models.ChannelSMS)
	}
	if sess.Language != "en" {
		t.Errorf("Language = %q, want en", sess.Language)
	}
	if sess.Locale != "IN" {
		t.Errorf("Locale = %q, want IN", sess.Locale)
	}
	if sess.Persona != models.PersonaElderlyUncle {
		t.Errorf("Persona = %q, want %q", sess.Persona, models.PersonaElderlyUncle)
	}
	if sess.Status != models.StatusActive {
		t.Errorf("Status = %q, want active", sess.Status)
	}
	if sess.CurrentState != models.StateUnknown {
		t.Errorf("CurrentState = %q, want UNKNOWN", sess.CurrentState)
	}
	if sess.CreatedAt.IsZero() || sess.UpdatedAt.IsZero() {
		t.Error("Create() left timestamps unset")
	}

	got, err := st.Sessions.GetBySessionID(ctx, "wa-msg-81723")
	if err != nil {
		t.Fatalf("GetBySessionID() error = %v", err)
	}
	if got == nil {
		t.Fatal("GetBySessionID() = nil after create")
	}
	if got.ID != sess.ID {
		t.Errorf("round-trip id = %v, want %v", got.ID, sess.ID)
	}
	if got.InitialConfidence != 0.35 {
		t.Errorf("InitialConfidence = %v, want 0.35", got.InitialConfidence)
	}
	if got.FinalConfidence != nil || got.ExposureRisk != nil || got.CompletedAt != nil {
		t.Error("new session has non-nil completion fields")
	}
}

func TestSessionCreateDuplicate(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	mustCreateSession(t, st, "dup-1")

	_, err := st.Sessions.Create(ctx, models.SessionSpec{SessionID: "dup-1"})
	if !errors.Is(err, ErrConstraint) {
		t.Errorf("duplicate Create() error = %v, want ErrConstraint", err)
	}
}

func TestSessionGetAbsent(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	got, err := st.Sessions.GetBySessionID(ctx, "never-created")
	if err != nil {
		t.Fatalf("GetBySessionID() error = %v", err)
	}
	if got != nil {
		t.Errorf("GetBySessionID(absent) = %+v, want nil", got)
	}

	got, err = st.Sessions.GetByID(ctx, uuid.New())
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got != nil {
		t.Errorf("GetByID(absent) = %+v, want nil", got)
	}
}

func TestSessionUpdatePartialIsolation(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	before := mustCreateSession(t, st, "iso-1")

	state := models.StateEngaging
	got, err := st.Sessions.Update(ctx, "iso-1", models.SessionPatch{
		CurrentState: &state,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got == nil {
		t.Fatal("Update() = nil for existing session")
	}

	if got.CurrentState != models.StateEngaging {
		t.Errorf("CurrentState = %q, want ENGAGING", got.CurrentState)
	}
	if got.Status != before.Status {
		t.Errorf("Status changed: %q -> %q", before.Status, got.Status)
	}
	if got.InitialConfidence != before.InitialConfidence {
		t.Errorf("InitialConfidence changed: %v -> %v", before.InitialConfidence, got.InitialConfidence)
	}
	if got.ScamDetected != before.ScamDetected {
		t.Error("ScamDetected changed by unrelated patch")
	}
	if got.FinalConfidence != nil || got.ExposureRisk != nil {
		t.Error("nullable metrics set by unrelated patch")
	}
	if !got.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("CreatedAt changed: %v -> %v", before.CreatedAt, got.CreatedAt)
	}
}

func TestSessionUpdateCompletion(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	mustCreateSession(t, st, "done-1")

	status := models.StatusCompleted
	detected := true
	confidence := 0.92
	risk := 0.12
	total := 18
	completed := time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC)

	got, err := st.Sessions.Update(ctx, "done-1", models.SessionPatch{
		Status:                 &status,
		ScamDetected:           &detected,
		FinalConfidence:        &confidence,
		ExposureRisk:           &risk,
		TotalMessagesExchanged: &total,
		CompletedAt:            &completed,
		CallbackResponse:       map[string]any{"status": "received", "code": float64(200)},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if got.Status != models.StatusCompleted {
		t.Errorf("Status = %q, want completed", got.Status)
	}
	if !got.ScamDetected {
		t.Error("ScamDetected not persisted")
	}
	if got.FinalConfidence == nil || *got.FinalConfidence != 0.92 {
		t.Errorf("FinalConfidence = %v, want 0.92", got.FinalConfidence)
	}
	if got.ExposureRisk == nil || *got.ExposureRisk != 0.12 {
		t.Errorf("ExposureRisk = %v, want 0.12", got.ExposureRisk)
	}
	if got.TotalMessagesExchanged != 18 {
		t.Errorf("TotalMessagesExchanged = %d, want 18", got.TotalMessagesExchanged)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(completed) {
		t.Errorf("CompletedAt = %v, want %v", got.CompletedAt, completed)
	}
	if got.CallbackResponse["status"] != "received" {
		t.Errorf("CallbackResponse = %v, want status=received", got.CallbackResponse)
	}
	if got.CallbackResponse["code"] != float64(200) {
		t.Errorf("CallbackResponse code = %v, want 200", got.CallbackResponse["code"])
	}
}

func TestSessionUpdateEmptyPatch(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	clock := &fixedClock{t: testTime()}
	st.Sessions.now = clock.now

	before := mustCreateSession(t, st, "noop-1")

	clock.advance(time.Hour)
	got, err := st.Sessions.Update(ctx, "noop-1", models.SessionPatch{})
	if err != nil {
		t.Fatalf("Update(empty) error = %v", err)
	}
	if got == nil {
		t.Fatal("Update(empty) = nil for existing session")
	}
	if !got.UpdatedAt.Equal(before.UpdatedAt) {
		t.Errorf("empty patch advanced updated_at: %v -> %v", before.UpdatedAt, got.UpdatedAt)
	}
}

func TestSessionUpdateMissing(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	state := models.StateProbing
	got, err := st.Sessions.Update(ctx, "ghost", models.SessionPatch{CurrentState: &state})
	if err != nil {
		t.Fatalf("Update(missing) error = %v", err)
	}
	if got != nil {
		t.Errorf("Update(missing) = %+v, want nil", got)
	}
}

func TestSessionListActive(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	clock := &fixedClock{t: testTime()}
	st.Sessions.now = clock.now

	mustCreateSession(t, st, "old")
	clock.advance(time.Minute)
	mustCreateSession(t, st, "mid")
	clock.advance(time.Minute)
	mustCreateSession(t, st, "new")

	status := models.StatusCompleted
	if _, err := st.Sessions.Update(ctx, "mid", models.SessionPatch{Status: &status}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	active, err := st.Sessions.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive() error = %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("ListActive() returned %d sessions, want 2", len(active))
	}
	if active[0].SessionID != "new" || active[1].SessionID != "old" {
		t.Errorf("ListActive() order = [%s, %s], want [new, old]",
			active[0].SessionID, active[1].SessionID)
	}
}
