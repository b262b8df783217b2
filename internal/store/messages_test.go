// ABOUTME: Tests for the append-only message ledger
// ABOUTME: Covers turn ordering, history limits, and permissive turn numbering

package store

import (
	"context"
	"testing"
	"time"

	"github.com/decoyops/honeyledger/internal/models"
)

func TestMessageAppendRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	sess := mustCreateSession(t, st, "msg-rt")

	delay := 4
	raw := `{"reply":"who is this?"}`
	final := "who is this?"
	state := models.StateProbing
	confidence := 0.55
	risk := 0.1

	_, err := st.Messages.Append(ctx, models.MessageSpec{
		SessionID:             sess.ID,
		Sender:                models.SenderAgent,
		Text:                  "who is this?",
		TurnNumber:            2,
		ResponseDelaySeconds:  &delay,
		RawResponse:           &raw,
		FinalResponse:         &final,
		StateAtMessage:        &state,
		ConfidenceAtMessage:   &confidence,
		ExposureRiskAtMessage: &risk,
	})
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	history, err := st.Messages.History(ctx, sess.ID, 0)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("History() returned %d messages, want 1", len(history))
	}

	got := history[0]
	if got.Sender != models.SenderAgent {
		t.Errorf("Sender = %q, want agent", got.Sender)
	}
	if got.Text != "who is this?" {
		t.Errorf("Text = %q", got.Text)
	}
	if got.TurnNumber != 2 {
		t.Errorf("TurnNumber = %d, want 2", got.TurnNumber)
	}
	if got.ResponseDelaySeconds == nil || *got.ResponseDelaySeconds != 4 {
		t.Errorf("ResponseDelaySeconds = %v, want 4", got.ResponseDelaySeconds)
	}
	if got.RawResponse == nil || *got.RawResponse != raw {
		t.Errorf("RawResponse = %v, want %q", got.RawResponse, raw)
	}
	if got.StateAtMessage == nil || *got.StateAtMessage != models.StateProbing {
		t.Errorf("StateAtMessage = %v, want PROBING", got.StateAtMessage)
	}
	if got.ConfidenceAtMessage == nil || *got.ConfidenceAtMessage != 0.55 {
		t.Errorf("ConfidenceAtMessage = %v, want 0.55", got.ConfidenceAtMessage)
	}
	if got.Timestamp.IsZero() {
		t.Error("zero spec timestamp not replaced with server clock")
	}
}

func TestMessageOptionalFieldsAbsent(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	sess := mustCreateSession(t, st, "msg-sparse")
	mustAppendMessage(t, st, sess, models.SenderScammer, 1)

	history, err := st.Messages.History(ctx, sess.ID, 0)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	got := history[0]
	if got.ResponseDelaySeconds != nil || got.RawResponse != nil ||
		got.FinalResponse != nil || got.StateAtMessage != nil ||
		got.ConfidenceAtMessage != nil || got.ExposureRiskAtMessage != nil {
		t.Errorf("omitted optional fields came back non-nil: %+v", got)
	}
}

func TestMessageHistoryOrdering(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	sess := mustCreateSession(t, st, "msg-order")

	// Insertion order deliberately scrambled
	for _, turn := range []int{3, 1, 2} {
		mustAppendMessage(t, st, sess, models.SenderScammer, turn)
	}

	history, err := st.Messages.History(ctx, sess.ID, 0)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("History() returned %d messages, want 3", len(history))
	}
	for i, want := range []int{1, 2, 3} {
		if history[i].TurnNumber != want {
			t.Errorf("history[%d].TurnNumber = %d, want %d", i, history[i].TurnNumber, want)
		}
	}
}

func TestMessageHistoryLimit(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	sess := mustCreateSession(t, st, "msg-limit")
	for turn := 1; turn <= 5; turn++ {
		mustAppendMessage(t, st, sess, models.SenderScammer, turn)
	}

	history, err := st.Messages.History(ctx, sess.ID, 2)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("History(limit=2) returned %d messages, want 2", len(history))
	}
	if history[0].TurnNumber != 1 || history[1].TurnNumber != 2 {
		t.Errorf("History(limit=2) turns = [%d, %d], want [1, 2]",
			history[0].TurnNumber, history[1].TurnNumber)
	}
}

func TestMessageDuplicateTurnsTolerated(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	sess := mustCreateSession(t, st, "msg-dup-turn")
	mustAppendMessage(t, st, sess, models.SenderScammer, 1)
	mustAppendMessage(t, st, sess, models.SenderAgent, 1)

	history, err := st.Messages.History(ctx, sess.ID, 0)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 2 {
		t.Errorf("duplicate turn numbers: %d rows, want 2", len(history))
	}
}

func TestMessageLastAgentMessage(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	sess := mustCreateSession(t, st, "msg-last")

	got, err := st.Messages.LastAgentMessage(ctx, sess.ID)
	if err != nil {
		t.Fatalf("LastAgentMessage() error = %v", err)
	}
	if got != nil {
		t.Errorf("LastAgentMessage(empty) = %+v, want nil", got)
	}

	mustAppendMessage(t, st, sess, models.SenderScammer, 1)
	first := mustAppendMessage(t, st, sess, models.SenderAgent, 2)
	mustAppendMessage(t, st, sess, models.SenderScammer, 3)
	second := mustAppendMessage(t, st, sess, models.SenderAgent, 4)

	got, err = st.Messages.LastAgentMessage(ctx, sess.ID)
	if err != nil {
		t.Fatalf("LastAgentMessage() error = %v", err)
	}
	if got == nil {
		t.Fatal("LastAgentMessage() = nil, want a message")
	}
	if got.ID != second.ID {
		t.Errorf("LastAgentMessage() id = %v, want %v (not %v)", got.ID, second.ID, first.ID)
	}
}

func TestMessageCallerTimestampKept(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	sess := mustCreateSession(t, st, "msg-ts")
	ts := time.Date(2026, 7, 15, 9, 0, 0, 0, time.UTC)

	msg, err := st.Messages.Append(ctx, models.MessageSpec{
		SessionID:  sess.ID,
		Sender:     models.SenderScammer,
		Text:       "your parcel is held",
		TurnNumber: 1,
		Timestamp:  ts,
	})
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if !msg.Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v", msg.Timestamp, ts)
	}

	history, err := st.Messages.History(ctx, sess.ID, 0)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if !history[0].Timestamp.Equal(ts) {
		t.Errorf("stored Timestamp = %v, want %v", history[0].Timestamp, ts)
	}
}
