package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

func ParseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, errors.New("empty duration string")
	}

	if dur, err := time.ParseDuration(s); err == nil {
		return dur, nil
	}

	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	numStr := s[:len(s)-1]
	unit := s[len(s)-1:]

	num, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration number: %s", numStr)
	}

	switch unit {
	case "d":
		return time.Duration(num) * 24 * time.Hour, nil
	case "w":
		return time.Duration(num) * 7 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("unknown duration unit: %s", unit)
	}
}

// ParseDate parses a calendar date (YYYY-MM-DD) or an RFC 3339 timestamp and
// truncates it to UTC midnight.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date string")
	}

	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.UTC(), nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date: %s", s)
	}
	return Midnight(t), nil
}

func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysSinceEpoch converts a date to the day count used by columnar DATE types.
func DaysSinceEpoch(t time.Time) int32 {
	return int32(Midnight(t).Unix() / 86400)
}

func FromDaysSinceEpoch(days int32) time.Time {
	return time.Unix(int64(days)*86400, 0).UTC()
}
