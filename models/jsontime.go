package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONTime wraps time.Time so we can control both
// JSON un/marshaling and SQL driver encoding. Job card clients post plain
// dates ("2024-01-01") as often as full timestamps, so parsing is lenient.
type JSONTime time.Time

const layoutDate = "2006-01-02"

// UnmarshalJSON accepts RFC3339 ("2025-05-16T15:32:25Z"), the same without a
// zone, or a bare date.
func (jt *JSONTime) UnmarshalJSON(b []byte) error {
	// strip quotes
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		*jt = JSONTime(time.Time{})
		return nil
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*jt = JSONTime(t)
		return nil
	}

	const layoutNoZone = "2006-01-02T15:04:05"
	if t, err := time.Parse(layoutNoZone, s); err == nil {
		*jt = JSONTime(t)
		return nil
	}

	t, err := time.Parse(layoutDate, s)
	if err != nil {
		return fmt.Errorf("JSONTime.UnmarshalJSON: cannot parse %q: %w", s, err)
	}
	*jt = JSONTime(t)
	return nil
}

// MarshalJSON emits the bare date when the value has no time-of-day part,
// full RFC3339 otherwise.
func (jt JSONTime) MarshalJSON() ([]byte, error) {
	t := time.Time(jt)
	if h, m, s := t.Clock(); h == 0 && m == 0 && s == 0 {
		return json.Marshal(t.Format(layoutDate))
	}
	return json.Marshal(t.Format(time.RFC3339))
}

// DateString renders the value the way the printed card shows dates.
func (jt JSONTime) DateString() string {
	t := time.Time(jt)
	if t.IsZero() {
		return ""
	}
	return t.Format(layoutDate)
}

// Value implements driver.Valuer so GORM/pgx can
// turn JSONTime into a SQL TIMESTAMPTZ parameter.
func (jt JSONTime) Value() (driver.Value, error) {
	return time.Time(jt), nil
}

// Scan implements sql.Scanner so GORM can read
// TIMESTAMPTZ back into JSONTime when querying.
func (jt *JSONTime) Scan(src interface{}) error {
	if src == nil {
		*jt = JSONTime(time.Time{})
		return nil
	}

	switch v := src.(type) {
	case time.Time:
		*jt = JSONTime(v)
		return nil
	case []byte:
		t, err := time.Parse(time.RFC3339Nano, string(v))
		if err != nil {
			return fmt.Errorf("JSONTime.Scan: parse %q: %w", string(v), err)
		}
		*jt = JSONTime(t)
		return nil
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return fmt.Errorf("JSONTime.Scan: parse %q: %w", v, err)
		}
		*jt = JSONTime(t)
		return nil
	default:
		return fmt.Errorf("JSONTime.Scan: unsupported type %T", src)
	}
}
