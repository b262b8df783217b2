// ABOUTME: Unified Store bundling the per-table ledger stores over one pool
// ABOUTME: Construction mirrors configuration-driven open plus in-memory variants for tests
package store

import (
	"github.com/decoyops/honeyledger/internal/config"
)

// Store aggregates every ledger store over a single connection pool
type Store struct {
	db *DB

	Sessions     *SessionStore
	Messages     *MessageStore
	Evolution    *EvolutionStore
	Intelligence *IntelligenceStore
	Tactics      *TacticStore
	Logs         *LogStore
	Metrics      *MetricsStore
}

// New builds a Store over an already-opened DB
func New(db *DB) *Store {
	return &Store{
		db:           db,
		Sessions:     NewSessionStore(db),
		Messages:     NewMessageStore(db),
		Evolution:    NewEvolutionStore(db),
		Intelligence: NewIntelligenceStore(db),
		Tactics:      NewTacticStore(db),
		Logs:         NewLogStore(db),
		Metrics:      NewMetricsStore(db),
	}
}

// OpenStore connects per the config and builds the aggregate store
func OpenStore(cfg *config.Config) (*Store, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	return New(db), nil
}

// OpenStoreInMemory builds a store over an in-memory database (for testing)
func OpenStoreInMemory() (*Store, error) {
	db, err := OpenInMemory()
	if err != nil {
		return nil, err
	}
	return New(db), nil
}

// Close closes the underlying connection pool
func (s *Store) Close() error {
	return s.db.Close()
}
