// ABOUTME: Database connection and lifecycle management for the durable ledger
// ABOUTME: PostgreSQL via lib/pq in production, modernc.org/sqlite for dev and tests
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/decoyops/honeyledger/internal/config"
)

// DB wraps a database connection pool for one of the supported drivers
type DB struct {
	conn   *sql.DB
	driver string
}

// Open connects to the durable store named by the config, applies the pool
// bounds, verifies connectivity, and ensures the schema exists.
func Open(cfg *config.Config) (*DB, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		return openPostgres(cfg)
	case config.DriverSQLite:
		return OpenSQLite(cfg.StorePath)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

func openPostgres(cfg *config.Config) (*DB, error) {
	conn, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	// Bounded pool: one connection per operation, released on every exit path
	// by database/sql itself. Acquisition waits under exhaustion rather than
	// rejecting outright. The per-operation ceiling is applied by callers
	// deriving contexts from cfg.StoreTimeout, not here.
	conn.SetMaxOpenConns(cfg.StoreMaxConns)
	conn.SetMaxIdleConns(cfg.StoreMinConns)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	db := &DB{conn: conn, driver: config.DriverPostgres}
	if err := db.Migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// OpenSQLite opens or creates a SQLite database at the given path
func OpenSQLite(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{conn: conn, driver: config.DriverSQLite}
	if err := db.Migrate(context.Background()); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// OpenInMemory creates an in-memory SQLite database (for testing)
func OpenInMemory() (*DB, error) {
	conn, err := sql.Open("sqlite", ":memory:?_pragma=foreign_keys(ON)")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}

	// A second connection would see a different empty :memory: database.
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn, driver: config.DriverSQLite}
	if err := db.Migrate(context.Background()); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// Migrate applies the schema for the active dialect. All statements are
// CREATE ... IF NOT EXISTS, so it is safe to run on every startup.
func (db *DB) Migrate(ctx context.Context) error {
	schema := SchemaSQLite
	if db.driver == config.DriverPostgres {
		schema = SchemaPostgres
	}
	_, err := db.conn.ExecContext(ctx, schema)
	return err
}

// Close closes the underlying connection pool
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// rebind rewrites ?-style placeholders to $1..$N for postgres. Queries are
// written with ? so the sqlite dialect runs them verbatim; none of them
// contain a literal question mark.
func (db *DB) rebind(query string) string {
	if db.driver != config.DriverPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ExecContext runs a statement with placeholder rebinding
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.conn.ExecContext(ctx, db.rebind(query), args...)
}

// QueryContext runs a query with placeholder rebinding
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.conn.QueryContext(ctx, db.rebind(query), args...)
}

// QueryRowContext runs a single-row query with placeholder rebinding
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.conn.QueryRowContext(ctx, db.rebind(query), args...)
}
