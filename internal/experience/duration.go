// Package experience computes how long a candidate has worked from the date
// ranges on their work history.
package experience

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/fairmatch/internal/types"
)

var (
	monthRangeRe = regexp.MustCompile(`(?:([a-z]{3,})\s*)?(\d{4})\s*(?:-|–|to|until)\s*(?:(?:([a-z]{3,})\s*)?(\d{4})|(present|current|now))`)
	yearRangeRe  = regexp.MustCompile(`(\d{4})\s*(?:(?:-|–|to|until)\s*(\d{4}|present|current|now))?`)
)

var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// TotalYears sums the duration of every entry's date range against the
// current clock. Overlapping ranges are summed, not merged.
func TotalYears(entries []types.ExperienceEntry) float64 {
	return TotalYearsAt(entries, time.Now())
}

// TotalYearsAt is TotalYears with an explicit clock, rounded to two
// decimal places.
func TotalYearsAt(entries []types.ExperienceEntry, now time.Time) float64 {
	months := 0
	for _, entry := range entries {
		months += RangeMonths(entry.DateRange, now)
	}
	return math.Round(float64(months)/12.0*100) / 100
}

// RangeMonths returns the inclusive month count covered by a date range
// string such as "Jan 2020 - Mar 2022", "2019 - 2021", "2020 - Present" or a
// bare year. Unparseable input counts zero.
func RangeMonths(dateRange string, now time.Time) int {
	s := strings.ToLower(strings.TrimSpace(dateRange))
	if s == "" {
		return 0
	}

	startY, startM, endY, endM, ok := parseRange(s, now)
	if !ok {
		return 0
	}

	months := (endY-startY)*12 + (endM - startM) + 1
	if months < 0 {
		return 0
	}
	return months
}

func parseRange(s string, now time.Time) (startY, startM, endY, endM int, ok bool) {
	if m := monthRangeRe.FindStringSubmatch(s); m != nil {
		startY = atoi(m[2])
		startM = monthNumber(m[1], 1)
		if m[5] != "" {
			endY, endM = now.Year(), int(now.Month())
		} else {
			endY = atoi(m[4])
			endM = monthNumber(m[3], 12)
		}
		return startY, startM, endY, endM, true
	}

	m := yearRangeRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, 0, false
	}
	startY = atoi(m[1])
	startM = 1
	switch {
	case m[2] == "":
		// Single year: the current year runs January through this month,
		// a past year counts in full.
		if startY == now.Year() {
			endY, endM = now.Year(), int(now.Month())
		} else {
			endY, endM = startY, 12
		}
	case m[2] == "present" || m[2] == "current" || m[2] == "now":
		endY, endM = now.Year(), int(now.Month())
	default:
		endY, endM = atoi(m[2]), 12
	}
	return startY, startM, endY, endM, true
}

// monthNumber resolves a month word to its number, or fallback when the word
// is absent or unrecognized.
func monthNumber(word string, fallback int) int {
	if len(word) < 3 {
		return fallback
	}
	if n, ok := monthNumbers[word[:3]]; ok {
		return n
	}
	return fallback
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
