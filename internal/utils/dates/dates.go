// Package dates normalizes the date formats seen in bank statement exports
// into a single canonical YYYY-MM-DD representation.
//
// Every date is constructed in UTC. Building civil dates in the local
// timezone shifts them by a day around DST boundaries, which is exactly the
// class of bug this package exists to prevent.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CanonicalLayout is the internal storage format for civil dates.
const CanonicalLayout = "2006-01-02"

var (
	isoPattern     = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	slashPattern   = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2}|\d{4})$`)
	dayMonPattern  = regexp.MustCompile(`^(\d{1,2})-([A-Za-z]{3})-(\d{2}|\d{4})$`)
	canonicalShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

var monthAbbrevs = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// Layouts tried when none of the three statement patterns match. Kept short
// on purpose: anything beyond these is treated as unparseable.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02 Jan 2006",
	"Jan 2, 2006",
}

// ParseDate parses a date cell from a statement into a UTC civil date.
// Patterns are tried in fixed priority order: YYYY-M-D, then D/M/YY or
// D/M/YYYY (two-digit years are 2000-based), then D-Mon-YY or D-Mon-YYYY.
// The second return value is false when the input cannot be parsed or the
// components do not describe a real calendar day (e.g. 31-Apr). Callers must
// treat a false ok as "unparseable", not as an error condition.
func ParseDate(input string) (time.Time, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, false
	}

	if m := isoPattern.FindStringSubmatch(s); m != nil {
		return makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}

	if m := slashPattern.FindStringSubmatch(s); m != nil {
		year := atoi(m[3])
		if year < 100 {
			year += 2000
		}
		return makeDate(year, atoi(m[2]), atoi(m[1]))
	}

	if m := dayMonPattern.FindStringSubmatch(s); m != nil {
		month, ok := monthAbbrevs[strings.ToLower(m[2])]
		if !ok {
			return time.Time{}, false
		}
		year := atoi(m[3])
		if year < 100 {
			year += 2000
		}
		return makeDate(year, int(month), atoi(m[1]))
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

// FormatDate serializes a date in the canonical zero-padded form.
func FormatDate(t time.Time) string {
	return t.UTC().Format(CanonicalLayout)
}

// IsCanonical reports whether s has the canonical YYYY-MM-DD shape.
func IsCanonical(s string) bool {
	return canonicalShape.MatchString(s)
}

// FormatDisplayDate converts a canonical YYYY-MM-DD string to MM/DD/YYYY for
// display. It rearranges substrings instead of round-tripping through a
// time.Time so a stored date can never shift by a day during rendering.
// Non-canonical input is returned unchanged.
func FormatDisplayDate(canonical string) string {
	if !canonicalShape.MatchString(canonical) {
		return canonical
	}
	return canonical[5:7] + "/" + canonical[8:10] + "/" + canonical[0:4]
}

// makeDate builds the date and rejects values that time.Date silently
// normalized (day 31 in a 30-day month rolls into the next month).
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
