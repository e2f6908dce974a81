// Package dateutils provides the date handling shared by the CLI and CSV import.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layouts
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutUS       = "01/02/2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
	MonthLayout        = "2006-01"
)

// InputFormats are tried in order when normalizing a user-supplied date.
// DD/MM is preferred over MM/DD, as in most of Europe.
var InputFormats = []string{
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutFull,
	DateLayoutISO + "T15:04:05Z07:00",
	"02/01/2006",
	DateLayoutUS,
	"02-01-2006",
	"2.1.2006",
	"2006/01/02",
	"2 January 2006",
	"02 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

var spaces = regexp.MustCompile(`\s+`)

// CleanDateString trims and collapses whitespace.
func CleanDateString(dateStr string) string {
	return spaces.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseDate parses dateStr with the first matching entry of InputFormats
// and returns the layout that matched.
func ParseDate(dateStr string) (time.Time, string, error) {
	clean := CleanDateString(dateStr)
	for _, layout := range InputFormats {
		if t, err := time.Parse(layout, clean); err == nil {
			return t, layout, nil
		}
	}
	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// Normalize rewrites a recognized date as YYYY-MM-DD. Unrecognized input is
// returned trimmed together with the parse error, so callers may keep it.
func Normalize(dateStr string) (string, error) {
	t, _, err := ParseDate(dateStr)
	if err != nil {
		return CleanDateString(dateStr), err
	}
	return ToISODate(t), nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// MonthKey formats date as YYYY-MM.
func MonthKey(date time.Time) string {
	return date.Format(MonthLayout)
}

// IsMonthKey reports whether s is a well-formed YYYY-MM key.
func IsMonthKey(s string) bool {
	if len(s) != len(MonthLayout) {
		return false
	}
	_, err := time.Parse(MonthLayout, s)
	return err == nil
}

// Today returns the current local date as YYYY-MM-DD.
func Today() string {
	return ToISODate(time.Now())
}

// CurrentMonth returns the current local month as YYYY-MM.
func CurrentMonth() string {
	return MonthKey(time.Now())
}
