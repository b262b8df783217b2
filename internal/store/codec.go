// ABOUTME: Textual encoding of list- and map-valued columns
// ABOUTME: Lists are never null: absent encodes as [] and decodes as an empty slice
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// encodeList serializes a signal/keyword list; nil becomes "[]"
func encodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeList parses a stored list column back into a slice. The result is
// never nil so downstream consumers can always iterate it.
func decodeList(raw sql.NullString) ([]string, error) {
	if !raw.Valid || raw.String == "" {
		return []string{}, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw.String), &values); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

// encodeMap serializes free-form metadata; nil maps store as NULL. The
// value is passed as a string so the postgres driver sends valid JSONB.
func encodeMap(m map[string]any) (any, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// decodeMap parses a stored metadata column; NULL decodes as a nil map
func decodeMap(raw sql.NullString) (map[string]any, error) {
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(raw.String), &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return m, nil
}
