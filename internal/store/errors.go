// ABOUTME: Error taxonomy for the durable ledger
// ABOUTME: NotFound is a nil result, never an error; these cover the rest
package store

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	sqlite "modernc.org/sqlite"
)

var (
	// ErrConstraint marks a unique-key violation on an insert path that has
	// no merge policy (session create, metrics record).
	ErrConstraint = errors.New("unique constraint violation")

	// ErrSerialization marks a stored textual value that failed to decode.
	ErrSerialization = errors.New("stored value failed to decode")
)

// SQLite extended result codes for uniqueness violations.
const (
	sqlitePrimaryKeyViolation = 1555
	sqliteUniqueViolation     = 2067
)

// classify maps driver-specific constraint errors onto ErrConstraint and
// leaves everything else (connectivity, timeouts) untouched for the caller.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return fmt.Errorf("%w: %s", ErrConstraint, pqErr.Detail)
	}

	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		switch sqErr.Code() {
		case sqlitePrimaryKeyViolation, sqliteUniqueViolation:
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
	}

	return err
}
