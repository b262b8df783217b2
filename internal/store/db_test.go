// ABOUTME: Tests for database opening and placeholder rebinding
// ABOUTME: Covers the in-memory path and the postgres dialect rewrite

package store

import (
	"context"
	"testing"

	"github.com/decoyops/honeyledger/internal/config"
)

func TestOpenInMemory(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer db.Close()

	var n int
	err = db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM sessions").Scan(&n)
	if err != nil {
		t.Fatalf("querying sessions table: %v", err)
	}
	if n != 0 {
		t.Errorf("fresh database has %d sessions, want 0", n)
	}
}

func TestRebind(t *testing.T) {
	tests := []struct {
		name   string
		driver string
		query  string
		want   string
	}{
		{
			name:   "sqlite untouched",
			driver: config.DriverSQLite,
			query:  "SELECT * FROM sessions WHERE id = ? AND status = ?",
			want:   "SELECT * FROM sessions WHERE id = ? AND status = ?",
		},
		{
			name:   "postgres numbered",
			driver: config.DriverPostgres,
			query:  "INSERT INTO t (a, b, c) VALUES (?, ?, ?)",
			want:   "INSERT INTO t (a, b, c) VALUES ($1, $2, $3)",
		},
		{
			name:   "postgres no placeholders",
			driver: config.DriverPostgres,
			query:  "SELECT 1",
			want:   "SELECT 1",
		},
		{
			name:   "postgres double digit",
			driver: config.DriverPostgres,
			query:  "VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			want:   "VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &DB{driver: tt.driver}
			if got := db.rebind(tt.query); got != tt.want {
				t.Errorf("rebind() = %q, want %q", got, tt.want)
			}
		})
	}
}
