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

// ParseRelativeTime resolves s against now. Accepted forms: "today",
// RFC3339, a plain date, or a signed offset such as "-1y", "-6M", "+1M",
// "-30d", "-2w" or "-12h". Month and year offsets move the calendar
// date rather than adding a fixed duration.
func ParseRelativeTime(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty time string")
	}

	if s == "today" {
		return StartOfDay(now), nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(DateLayout, s, now.Location()); err == nil {
		return t, nil
	}

	if !strings.HasPrefix(s, "-") && !strings.HasPrefix(s, "+") {
		return time.Time{}, fmt.Errorf("relative time must start with + or -: %s", s)
	}

	sign := 1
	if strings.HasPrefix(s, "-") {
		sign = -1
	}
	s = s[1:]

	if n, unit, ok := calendarOffset(s); ok {
		switch unit {
		case 'M':
			return now.AddDate(0, sign*n, 0), nil
		case 'y':
			return now.AddDate(sign*n, 0, 0), nil
		}
	}

	dur, err := ParseDuration(s)
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(time.Duration(sign) * dur), nil
}

func calendarOffset(s string) (int, byte, bool) {
	if len(s) < 2 {
		return 0, 0, false
	}
	unit := s[len(s)-1]
	if unit != 'M' && unit != 'y' {
		return 0, 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 {
		return 0, 0, false
	}
	return n, unit, true
}

// ParseDate parses a reference date given as "today", a plain date or
// RFC3339, truncated to midnight UTC. An empty string resolves to now.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return StartOfDay(now.UTC()), nil
	}
	t, err := ParseRelativeTime(s, now.UTC())
	if err != nil {
		return time.Time{}, err
	}
	return StartOfDay(t.UTC()), nil
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts whole calendar days from a to b; negative when b is
// before a.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// Window resolves a relative floor such as "-1y" against today. The result
// never lies after today.
func Window(floor string, today time.Time) (time.Time, error) {
	from, err := ParseRelativeTime(floor, today)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid window %q: %w", floor, err)
	}
	from = StartOfDay(from)
	if from.After(today) {
		return today, nil
	}
	return from, nil
}

// MustWindow is Window for compile-time constant floors.
func MustWindow(floor string, today time.Time) time.Time {
	t, err := Window(floor, today)
	if err != nil {
		panic(err)
	}
	return t
}
