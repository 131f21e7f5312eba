package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTimeString is returned when a value cannot be parsed as HH:MM or HH:MM:SS
	ErrInvalidTimeString = errors.New("types: invalid time string format")
)

// Layouts accepted when parsing a TimeString.
// Postgres TIME columns come back as HH:MM:SS, the API uses HH:MM.
const (
	layoutMinutes = "15:04"
	layoutSeconds = "15:04:05"
)

// TimeString is a time of day without a date, stored as "HH:MM" (seconds kept
// when present). It is comparable, orderable and arithmetic-friendly while
// staying trivially serializable to JSON and to Postgres TIME columns.
type TimeString string

// NewTimeString builds a TimeString from the wall-clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(layoutMinutes))
}

// NewTimeStringFromString parses s as HH:MM or HH:MM:SS.
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := parseTimeString(s); err != nil {
		return "", err
	}
	return TimeString(s), nil
}

func parseTimeString(s string) (time.Time, error) {
	if t, err := time.Parse(layoutMinutes, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(layoutSeconds, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
}

// String returns the raw HH:MM[:SS] representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty (unset).
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value parses as a time of day.
func (t TimeString) Validate() error {
	_, err := parseTimeString(string(t))
	return err
}

// MinutesOfDay returns the value as minutes since midnight.
// Seconds, when present, are truncated. "24:00" (exclusive end of day,
// produced by AddMinutes) maps to 1440.
func (t TimeString) MinutesOfDay() (int, error) {
	if t == "24:00" {
		return 24 * 60, nil
	}
	parsed, err := parseTimeString(string(t))
	if err != nil {
		return 0, err
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
// Invalid values compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.MinutesOfDay()
	b, errB := other.MinutesOfDay()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.MinutesOfDay()
	b, errB := other.MinutesOfDay()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// AddMinutes returns the time of day m minutes after t.
// The result is clamped to the same day: crossing midnight is an error,
// a slot never wraps to the next day.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	minutes, err := t.MinutesOfDay()
	if err != nil {
		return "", err
	}
	total := minutes + m
	if total < 0 || total > 24*60 {
		return "", fmt.Errorf("%w: %q%+d minutes crosses day boundary", ErrInvalidTimeString, t, m)
	}
	// 24:00 is a valid exclusive upper bound for a closing time
	if total == 24*60 {
		return TimeString("24:00"), nil
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// At anchors the time of day onto the given calendar date, in date's location.
func (t TimeString) At(date time.Time) (time.Time, error) {
	parsed, err := parseTimeString(string(t))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), parsed.Second(), 0,
		date.Location(),
	), nil
}

// Value implements driver.Valuer so TimeString maps onto TIME columns.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner for TIME columns and their text forms.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}
