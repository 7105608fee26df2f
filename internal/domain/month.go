package domain

import (
	"regexp"
	"time"
)

// Month is a calendar month token in YYYY-MM form. It stays a string on
// purpose: zero-padded tokens sort lexicographically in chronological
// order, which the carryover replay depends on. It is never parsed into a
// date inside the overview computation.
type Month string

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ParseMonth validates a YYYY-MM token. Malformed tokens are rejected,
// never coerced.
func ParseMonth(s string) (Month, error) {
	if !monthPattern.MatchString(s) {
		return "", ErrInvalidMonth
	}
	return Month(s), nil
}

// MonthOf returns the month token for a calendar date.
func MonthOf(t time.Time) Month {
	return Month(t.UTC().Format("2006-01"))
}

// MonthsOfYear returns the twelve month tokens of a calendar year in order.
func MonthsOfYear(year int) []Month {
	months := make([]Month, 12)
	for i := range months {
		months[i] = MonthOf(time.Date(year, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC))
	}
	return months
}

// Valid reports whether the token matches YYYY-MM.
func (m Month) Valid() bool {
	return monthPattern.MatchString(string(m))
}

// Before reports whether m is strictly earlier than other.
func (m Month) Before(other Month) bool {
	return string(m) < string(other)
}

// After reports whether m is strictly later than other.
func (m Month) After(other Month) bool {
	return string(m) > string(other)
}

func (m Month) String() string {
	return string(m)
}
