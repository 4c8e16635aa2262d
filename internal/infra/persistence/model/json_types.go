package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// scanJSON decodes a jsonb column value into dst. NULL leaves dst untouched.
func scanJSON(value any, dst any) error {
	if value == nil {
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.Errorf("unsupported jsonb source type %T", value)
	}

	if len(raw) == 0 {
		return nil
	}

	return errors.WithStack(json.Unmarshal(raw, dst))
}

// UUIDSlice stores an ordered list of UUIDs in a single jsonb column.
type UUIDSlice []uuid.UUID

// Scan implements sql.Scanner.
func (s *UUIDSlice) Scan(value any) error {
	return scanJSON(value, s)
}

// Value implements driver.Valuer. nil slices serialize as empty arrays so
// the column never goes NULL.
func (s UUIDSlice) Value() (driver.Value, error) {
	if s == nil {
		s = UUIDSlice{}
	}
	raw, err := json.Marshal(s)

	return raw, errors.WithStack(err)
}

// StringSlice stores a list of strings in a single jsonb column.
type StringSlice []string

// Scan implements sql.Scanner.
func (s *StringSlice) Scan(value any) error {
	return scanJSON(value, s)
}

// Value implements driver.Valuer.
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		s = StringSlice{}
	}
	raw, err := json.Marshal(s)

	return raw, errors.WithStack(err)
}

// JSONMap stores an arbitrary JSON object in a jsonb column.
type JSONMap map[string]any

// Scan implements sql.Scanner.
func (m *JSONMap) Scan(value any) error {
	return scanJSON(value, m)
}

// Value implements driver.Valuer.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		m = JSONMap{}
	}
	raw, err := json.Marshal(m)

	return raw, errors.WithStack(err)
}
