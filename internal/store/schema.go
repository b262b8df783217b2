// ABOUTME: Durable-store schema for the engagement ledger
// ABOUTME: One constant per dialect; row ids and timestamps are generated in Go
package store

// SchemaPostgres contains all DDL for the production PostgreSQL store
const SchemaPostgres = `
CREATE TABLE IF NOT EXISTS sessions (
    id UUID PRIMARY KEY,
    session_id TEXT NOT NULL UNIQUE,
    channel TEXT NOT NULL DEFAULT 'SMS',
    language TEXT NOT NULL DEFAULT 'en',
    locale TEXT NOT NULL DEFAULT 'IN',
    persona TEXT NOT NULL DEFAULT 'ELDERLY_UNCLE',
    initial_confidence DOUBLE PRECISION NOT NULL DEFAULT 0,
    status TEXT NOT NULL DEFAULT 'active',
    current_state TEXT NOT NULL DEFAULT 'UNKNOWN',
    scam_detected BOOLEAN NOT NULL DEFAULT FALSE,
    final_confidence DOUBLE PRECISION,
    exposure_risk DOUBLE PRECISION,
    total_messages_exchanged INTEGER NOT NULL DEFAULT 0,
    engagement_duration_seconds INTEGER NOT NULL DEFAULT 0,
    intelligence_extracted_count INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL,
    completed_at TIMESTAMPTZ,
    callback_sent BOOLEAN NOT NULL DEFAULT FALSE,
    callback_sent_at TIMESTAMPTZ,
    callback_response JSONB
);

CREATE TABLE IF NOT EXISTS messages (
    id UUID PRIMARY KEY,
    session_id UUID NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
    sender TEXT NOT NULL,
    text TEXT NOT NULL,
    turn_number INTEGER NOT NULL,
    timestamp TIMESTAMPTZ NOT NULL,
    response_delay_seconds INTEGER,
    raw_llm_response TEXT,
    final_response TEXT,
    state_at_message TEXT,
    confidence_at_message DOUBLE PRECISION,
    exposure_risk_at_message DOUBLE PRECISION,
    created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS state_evolution (
    id UUID PRIMARY KEY,
    session_id UUID NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
    message_id UUID NOT NULL REFERENCES messages(id) ON DELETE CASCADE,
    turn_number INTEGER NOT NULL,
    previous_state TEXT,
    current_state TEXT NOT NULL,
    state_transition_occurred BOOLEAN NOT NULL DEFAULT FALSE,
    turns_in_current_state INTEGER NOT NULL DEFAULT 0,
    previous_confidence DOUBLE PRECISION,
    current_confidence DOUBLE PRECISION NOT NULL,
    confidence_delta DOUBLE PRECISION,
    confidence_trend TEXT,
    exposure_risk DOUBLE PRECISION NOT NULL DEFAULT 0,
    exposure_delta DOUBLE PRECISION,
    tone_confusion DOUBLE PRECISION,
    tone_anxiety DOUBLE PRECISION,
    tone_urgency DOUBLE PRECISION,
    tone_compliance DOUBLE PRECISION,
    tone_cognitive_load DOUBLE PRECISION,
    drift_rate DOUBLE PRECISION,
    initiative DOUBLE PRECISION,
    signals_detected TEXT NOT NULL DEFAULT '[]',
    timestamp TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS extracted_intelligence (
    id UUID PRIMARY KEY,
    session_id UUID NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
    artifact_type TEXT NOT NULL,
    artifact_value TEXT NOT NULL,
    extracted_from_message_id UUID NOT NULL,
    extracted_at_turn INTEGER NOT NULL,
    extraction_method TEXT NOT NULL DEFAULT 'regex',
    confirmed BOOLEAN NOT NULL DEFAULT FALSE,
    confirmation_count INTEGER NOT NULL DEFAULT 1,
    confidence_score DOUBLE PRECISION NOT NULL DEFAULT 0.5,
    context_snippet TEXT,
    metadata JSONB,
    first_seen_at TIMESTAMPTZ NOT NULL,
    last_seen_at TIMESTAMPTZ NOT NULL,
    UNIQUE (session_id, artifact_type, artifact_value)
);

CREATE TABLE IF NOT EXISTS scammer_tactics (
    id UUID PRIMARY KEY,
    session_id UUID NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
    tactic_type TEXT NOT NULL,
    tactic_description TEXT,
    detected_at_turn INTEGER NOT NULL,
    message_text TEXT NOT NULL,
    keywords_used TEXT NOT NULL DEFAULT '[]',
    threat_level TEXT NOT NULL DEFAULT 'medium',
    timestamp TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS system_logs (
    id UUID PRIMARY KEY,
    session_id UUID REFERENCES sessions(id) ON DELETE SET NULL,
    log_level TEXT NOT NULL,
    component TEXT NOT NULL,
    event_type TEXT NOT NULL,
    message TEXT NOT NULL,
    details JSONB,
    timestamp TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS evaluation_metrics (
    id UUID PRIMARY KEY,
    session_id UUID NOT NULL UNIQUE REFERENCES sessions(id) ON DELETE CASCADE,
    engagement_depth_score DOUBLE PRECISION NOT NULL,
    conversation_naturalness_score DOUBLE PRECISION NOT NULL,
    extraction_efficiency DOUBLE PRECISION NOT NULL,
    scam_detection_confidence DOUBLE PRECISION NOT NULL,
    false_positive_risk DOUBLE PRECISION NOT NULL,
    average_response_delay DOUBLE PRECISION NOT NULL,
    tone_drift_smoothness DOUBLE PRECISION NOT NULL,
    state_transition_count INTEGER NOT NULL,
    premature_exits INTEGER NOT NULL,
    unique_artifacts_extracted INTEGER NOT NULL,
    confirmed_artifacts_extracted INTEGER NOT NULL,
    high_confidence_artifacts INTEGER NOT NULL,
    typo_count INTEGER NOT NULL,
    message_truncations INTEGER NOT NULL,
    repetitions INTEGER NOT NULL,
    clarification_questions_asked INTEGER NOT NULL,
    overall_quality_score DOUBLE PRECISION NOT NULL,
    calculated_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_status ON sessions(status);
CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id);
CREATE INDEX IF NOT EXISTS idx_messages_session_turn ON messages(session_id, turn_number);
CREATE INDEX IF NOT EXISTS idx_evolution_session ON state_evolution(session_id);
CREATE INDEX IF NOT EXISTS idx_intelligence_session ON extracted_intelligence(session_id);
CREATE INDEX IF NOT EXISTS idx_tactics_session ON scammer_tactics(session_id);
CREATE INDEX IF NOT EXISTS idx_logs_session ON system_logs(session_id);
`

// SchemaSQLite mirrors SchemaPostgres for the dev/test store. Ids are TEXT,
// timestamps DATETIME, floats REAL; the shape and constraints are identical.
const SchemaSQLite = `
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL UNIQUE,
    channel TEXT NOT NULL DEFAULT 'SMS',
    language TEXT NOT NULL DEFAULT 'en',
    locale TEXT NOT NULL DEFAULT 'IN',
    persona TEXT NOT NULL DEFAULT 'ELDERLY_UNCLE',
    initial_confidence REAL NOT NULL DEFAULT 0,
    status TEXT NOT NULL DEFAULT 'active',
    current_state TEXT NOT NULL DEFAULT 'UNKNOWN',
    scam_detected BOOLEAN NOT NULL DEFAULT FALSE,
    final_confidence REAL,
    exposure_risk REAL,
    total_messages_exchanged INTEGER NOT NULL DEFAULT 0,
    engagement_duration_seconds INTEGER NOT NULL DEFAULT 0,
    intelligence_extracted_count INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL,
    completed_at DATETIME,
    callback_sent BOOLEAN NOT NULL DEFAULT FALSE,
    callback_sent_at DATETIME,
    callback_response TEXT
);

CREATE TABLE IF NOT EXISTS messages (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
    sender TEXT NOT NULL,
    text TEXT NOT NULL,
    turn_number INTEGER NOT NULL,
    timestamp DATETIME NOT NULL,
    response_delay_seconds INTEGER,
    raw_llm_response TEXT,
    final_response TEXT,
    state_at_message TEXT,
    confidence_at_message REAL,
    exposure_risk_at_message REAL,
    created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS state_evolution (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
    message_id TEXT NOT NULL REFERENCES messages(id) ON DELETE CASCADE,
    turn_number INTEGER NOT NULL,
    previous_state TEXT,
    current_state TEXT NOT NULL,
    state_transition_occurred BOOLEAN NOT NULL DEFAULT FALSE,
    turns_in_current_state INTEGER NOT NULL DEFAULT 0,
    previous_confidence REAL,
    current_confidence REAL NOT NULL,
    confidence_delta REAL,
    confidence_trend TEXT,
    exposure_risk REAL NOT NULL DEFAULT 0,
    exposure_delta REAL,
    tone_confusion REAL,
    tone_anxiety REAL,
    tone_urgency REAL,
    tone_compliance REAL,
    tone_cognitive_load REAL,
    drift_rate REAL,
    initiative REAL,
    signals_detected TEXT NOT NULL DEFAULT '[]',
    timestamp DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS extracted_intelligence (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
    artifact_type TEXT NOT NULL,
    artifact_value TEXT NOT NULL,
    extracted_from_message_id TEXT NOT NULL,
    extracted_at_turn INTEGER NOT NULL,
    extraction_method TEXT NOT NULL DEFAULT 'regex',
    confirmed BOOLEAN NOT NULL DEFAULT FALSE,
    confirmation_count INTEGER NOT NULL DEFAULT 1,
    confidence_score REAL NOT NULL DEFAULT 0.5,
    context_snippet TEXT,
    metadata TEXT,
    first_seen_at DATETIME NOT NULL,
    last_seen_at DATETIME NOT NULL,
    UNIQUE (session_id, artifact_type, artifact_value)
);

CREATE TABLE IF NOT EXISTS scammer_tactics (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
    tactic_type TEXT NOT NULL,
    tactic_description TEXT,
    detected_at_turn INTEGER NOT NULL,
    message_text TEXT NOT NULL,
    keywords_used TEXT NOT NULL DEFAULT '[]',
    threat_level TEXT NOT NULL DEFAULT 'medium',
    timestamp DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS system_logs (
    id TEXT PRIMARY KEY,
    session_id TEXT REFERENCES sessions(id) ON DELETE SET NULL,
    log_level TEXT NOT NULL,
    component TEXT NOT NULL,
    event_type TEXT NOT NULL,
    message TEXT NOT NULL,
    details TEXT,
    timestamp DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS evaluation_metrics (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL UNIQUE REFERENCES sessions(id) ON DELETE CASCADE,
    engagement_depth_score REAL NOT NULL,
    conversation_naturalness_score REAL NOT NULL,
    extraction_efficiency REAL NOT NULL,
    scam_detection_confidence REAL NOT NULL,
    false_positive_risk REAL NOT NULL,
    average_response_delay REAL NOT NULL,
    tone_drift_smoothness REAL NOT NULL,
    state_transition_count INTEGER NOT NULL,
    premature_exits INTEGER NOT NULL,
    unique_artifacts_extracted INTEGER NOT NULL,
    confirmed_artifacts_extracted INTEGER NOT NULL,
    high_confidence_artifacts INTEGER NOT NULL,
    typo_count INTEGER NOT NULL,
    message_truncations INTEGER NOT NULL,
    repetitions INTEGER NOT NULL,
    clarification_questions_asked INTEGER NOT NULL,
    overall_quality_score REAL NOT NULL,
    calculated_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_status ON sessions(status);
CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id);
CREATE INDEX IF NOT EXISTS idx_messages_session_turn ON messages(session_id, turn_number);
CREATE INDEX IF NOT EXISTS idx_evolution_session ON state_evolution(session_id);
CREATE INDEX IF NOT EXISTS idx_intelligence_session ON extracted_intelligence(session_id);
CREATE INDEX IF NOT EXISTS idx_tactics_session ON scammer_tactics(session_id);
CREATE INDEX IF NOT EXISTS idx_logs_session ON system_logs(session_id);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1
