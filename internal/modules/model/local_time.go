package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// LocalTimeLayout is the wire format of a LocalTime. It carries no offset.
const LocalTimeLayout = "2006-01-02T15:04:05"

var localTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	LocalTimeLayout,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// LocalTime is a naive timestamp: a wall clock reading with no zone.
// Inputs that carry an offset keep their wall clock and lose the offset,
// so "10:00+03:00" and "10:00" compare equal.
type LocalTime struct {
	time.Time
}

// NewLocalTime drops the location of t while keeping its wall clock.
func NewLocalTime(t time.Time) LocalTime {
	return LocalTime{Time: time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.UTC,
	)}
}

// ParseLocalTime accepts RFC 3339 (with or without offset) and a few common
// naive layouts.
func ParseLocalTime(s string) (LocalTime, error) {
	s = strings.TrimSpace(s)
	for _, layout := range localTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewLocalTime(t), nil
		}
	}
	return LocalTime{}, fmt.Errorf("invalid local time %q", s)
}

func (t LocalTime) String() string {
	return t.Format(LocalTimeLayout)
}

func (t LocalTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(LocalTimeLayout) + `"`), nil
}

func (t *LocalTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*t = LocalTime{}
		return nil
	}
	parsed, err := ParseLocalTime(strings.Trim(s, `"`))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// UnmarshalText lets gin bind LocalTime from form and query values.
func (t *LocalTime) UnmarshalText(b []byte) error {
	parsed, err := ParseLocalTime(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t LocalTime) Value() (driver.Value, error) {
	return t.Time, nil
}

func (t *LocalTime) Scan(v any) error {
	switch val := v.(type) {
	case nil:
		*t = LocalTime{}
	case time.Time:
		*t = NewLocalTime(val)
	case string:
		parsed, err := ParseLocalTime(val)
		if err != nil {
			return err
		}
		*t = parsed
	case []byte:
		parsed, err := ParseLocalTime(string(val))
		if err != nil {
			return err
		}
		*t = parsed
	default:
		return fmt.Errorf("cannot scan %T into LocalTime", v)
	}
	return nil
}

func (LocalTime) GormDataType() string { return "timestamp" }
