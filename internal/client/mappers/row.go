// Package mappers translates between the wire row shape (flat, snake_cased
// fields) and the typed domain entities. Mappers are pure: no side effects,
// no network, no clock.
//
// A row missing a required field fails the read with ErrMissingField rather
// than fabricating a default; the caller decides how to degrade.
package mappers

import (
	"errors"
	"fmt"
	"time"

	"pilotdeck/internal/client/gateway"
)

// ErrMissingField marks a row that lacks a field the domain shape requires.
var ErrMissingField = errors.New("missing field")

func stringField(row gateway.Row, key string) (string, error) {
	v, ok := row[key]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %s: expected string, got %T", key, v)
	}
	return s, nil
}

// optionalStringField treats an absent or null value as "".
func optionalStringField(row gateway.Row, key string) (string, error) {
	v, ok := row[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %s: expected string, got %T", key, v)
	}
	return s, nil
}

func numberField(row gateway.Row, key string) (float64, error) {
	v, ok := row[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("field %s: expected number, got %T", key, v)
	}
}

func boolField(row gateway.Row, key string) (bool, error) {
	v, ok := row[key]
	if !ok || v == nil {
		return false, fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("field %s: expected bool, got %T", key, v)
	}
	return b, nil
}

// dateField parses a YYYY-MM-DD wire date.
func dateField(row gateway.Row, key string) (time.Time, error) {
	s, err := stringField(row, key)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("field %s: %w", key, err)
	}
	return t, nil
}

func wireDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
