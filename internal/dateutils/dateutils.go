// Package dateutils provides the date handling used at the input boundary and for monthly breakdowns.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date layouts
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutUS       = "01/02/2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
	MonthLayout        = "2006-01"
)

// CommonFormats is the list of layouts tried by ParseDate, in order.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutFull,
	DateLayoutISO + "T15:04:05Z07:00",
	DateLayoutEuropean,
	"2006/01/02",
	DateLayoutUS,
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
}

var whitespace = regexp.MustCompile(`\s+`)

// CleanDateString trims and collapses whitespace
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseDate attempts to parse a date string using CommonFormats.
// Returns the parsed time and the layout that matched.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)
	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}
	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// IsISODate reports whether s is a valid calendar date in YYYY-MM-DD form.
func IsISODate(s string) bool {
	_, err := time.Parse(DateLayoutISO, s)
	return err == nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// Today returns the current local date in ISO form.
func Today() string {
	return ToISODate(time.Now())
}

// MonthKey returns the YYYY-MM bucket a date string belongs to.
// ok is false when the date cannot be parsed.
func MonthKey(dateStr string) (key string, ok bool) {
	t, _, err := ParseDate(dateStr)
	if err != nil {
		return "", false
	}
	return t.Format(MonthLayout), true
}
