// ABOUTME: Append-only per-turn snapshots of conversation state and scoring
// ABOUTME: Signal labels round-trip through a JSON text column, absent means empty
package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/decoyops/honeyledger/internal/models"
)

// EvolutionStore handles state-evolution persistence
type EvolutionStore struct {
	db  *DB
	now func() time.Time
}

// NewEvolutionStore creates a new EvolutionStore
func NewEvolutionStore(db *DB) *EvolutionStore {
	return &EvolutionStore{db: db, now: time.Now}
}

const evolutionColumns = `id, session_id, message_id, turn_number,
	previous_state, current_state, state_transition_occurred, turns_in_current_state,
	previous_confidence, current_confidence, confidence_delta, confidence_trend,
	exposure_risk, exposure_delta,
	tone_confusion, tone_anxiety, tone_urgency, tone_compliance, tone_cognitive_load,
	drift_rate, initiative, signals_detected, timestamp`

// Record inserts one evolution row for a turn
func (s *EvolutionStore) Record(ctx context.Context, spec models.EvolutionSpec) (*models.StateEvolution, error) {
	signals, err := encodeList(spec.SignalsDetected)
	if err != nil {
		return nil, err
	}

	ev := &models.StateEvolution{
		ID:                      uuid.New(),
		SessionID:               spec.SessionID,
		MessageID:               spec.MessageID,
		TurnNumber:              spec.TurnNumber,
		PreviousState:           spec.PreviousState,
		CurrentState:            spec.CurrentState,
		StateTransitionOccurred: spec.StateTransitionOccurred,
		TurnsInCurrentState:     spec.TurnsInCurrentState,
		PreviousConfidence:      spec.PreviousConfidence,
		CurrentConfidence:       spec.CurrentConfidence,
		ConfidenceDelta:         spec.ConfidenceDelta,
		ConfidenceTrend:         spec.ConfidenceTrend,
		ExposureRisk:            spec.ExposureRisk,
		ExposureDelta:           spec.ExposureDelta,
		ToneConfusion:           spec.ToneConfusion,
		ToneAnxiety:             spec.ToneAnxiety,
		ToneUrgency:             spec.ToneUrgency,
		ToneCompliance:          spec.ToneCompliance,
		ToneCognitiveLoad:       spec.ToneCognitiveLoad,
		DriftRate:               spec.DriftRate,
		Initiative:              spec.Initiative,
		SignalsDetected:         spec.SignalsDetected,
		Timestamp:               s.now().UTC(),
	}
	if ev.SignalsDetected == nil {
		ev.SignalsDetected = []string{}
	}

	var prevState any
	if ev.PreviousState != nil {
		prevState = string(*ev.PreviousState)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO state_evolution (`+evolutionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, ev.ID, ev.SessionID, ev.MessageID, ev.TurnNumber,
		prevState, string(ev.CurrentState), ev.StateTransitionOccurred,
		ev.TurnsInCurrentState, nullable(ev.PreviousConfidence), ev.CurrentConfidence,
		nullable(ev.ConfidenceDelta), nullable(ev.ConfidenceTrend),
		ev.ExposureRisk, nullable(ev.ExposureDelta),
		nullable(ev.ToneConfusion), nullable(ev.ToneAnxiety), nullable(ev.ToneUrgency),
		nullable(ev.ToneCompliance), nullable(ev.ToneCognitiveLoad),
		nullable(ev.DriftRate), nullable(ev.Initiative), signals, ev.Timestamp)
	if err != nil {
		return nil, classify(err)
	}

	return ev, nil
}

// History returns a session's full evolution history ordered by turn number
func (s *EvolutionStore) History(ctx context.Context, sessionID uuid.UUID) ([]models.StateEvolution, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+evolutionColumns+` FROM state_evolution
		WHERE session_id = ?
		ORDER BY turn_number ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var history []models.StateEvolution
	for rows.Next() {
		ev, err := scanEvolution(rows)
		if err != nil {
			return nil, err
		}
		history = append(history, *ev)
	}

	return history, rows.Err()
}

func scanEvolution(row rowScanner) (*models.StateEvolution, error) {
	var (
		ev        models.StateEvolution
		prevState sql.NullString
		prevConf  sql.NullFloat64
		confDelta sql.NullFloat64
		confTrend sql.NullString
		expDelta  sql.NullFloat64
		toneConf  sql.NullFloat64
		toneAnx   sql.NullFloat64
		toneUrg   sql.NullFloat64
		toneComp  sql.NullFloat64
		toneLoad  sql.NullFloat64
		drift     sql.NullFloat64
		initv     sql.NullFloat64
		signals   sql.NullString
	)

	err := row.Scan(&ev.ID, &ev.SessionID, &ev.MessageID, &ev.TurnNumber,
		&prevState, &ev.CurrentState, &ev.StateTransitionOccurred,
		&ev.TurnsInCurrentState, &prevConf, &ev.CurrentConfidence,
		&confDelta, &confTrend, &ev.ExposureRisk, &expDelta,
		&toneConf, &toneAnx, &toneUrg, &toneComp, &toneLoad,
		&drift, &initv, &signals, &ev.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if prevState.Valid {
		state := models.ConversationState(prevState.String)
		ev.PreviousState = &state
	}
	if prevConf.Valid {
		ev.PreviousConfidence = &prevConf.Float64
	}
	if confDelta.Valid {
		ev.ConfidenceDelta = &confDelta.Float64
	}
	if confTrend.Valid {
		ev.ConfidenceTrend = &confTrend.String
	}
	if expDelta.Valid {
		ev.ExposureDelta = &expDelta.Float64
	}
	if toneConf.Valid {
		ev.ToneConfusion = &toneConf.Float64
	}
	if toneAnx.Valid {
		ev.ToneAnxiety = &toneAnx.Float64
	}
	if toneUrg.Valid {
		ev.ToneUrgency = &toneUrg.Float64
	}
	if toneComp.Valid {
		ev.ToneCompliance = &toneComp.Float64
	}
	if toneLoad.Valid {
		ev.ToneCognitiveLoad = &toneLoad.Float64
	}
	if drift.Valid {
		ev.DriftRate = &drift.Float64
	}
	if initv.Valid {
		ev.Initiative = &initv.Float64
	}

	ev.SignalsDetected, err = decodeList(signals)
	if err != nil {
		return nil, err
	}

	return &ev, nil
}
