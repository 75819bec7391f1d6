package core

import (
	"strings"
	"time"
)

// Months lists the canonical months in calendar order.
var Months = []time.Month{
	time.January, time.February, time.March, time.April, time.May, time.June,
	time.July, time.August, time.September, time.October, time.November, time.December,
}

// CanonicalMonth maps a full month name or an abbreviation of at least three
// letters ("jan", "Sept", "DECEMBER") to its month.
func CanonicalMonth(label string) (time.Month, bool) {
	l := strings.ToLower(strings.TrimSpace(label))
	if len(l) < 3 {
		return 0, false
	}
	for _, m := range Months {
		if strings.HasPrefix(strings.ToLower(m.String()), l) {
			return m, true
		}
	}
	return 0, false
}

// ParseMonth is CanonicalMonth for user input; it also accepts 1-12.
func ParseMonth(s string) (time.Month, bool) {
	s = strings.TrimSpace(s)
	if len(s) > 0 && len(s) <= 2 {
		n := 0
		for _, r := range s {
			if r < '0' || r > '9' {
				return 0, false
			}
			n = n*10 + int(r-'0')
		}
		if n < 1 || n > 12 {
			return 0, false
		}
		return time.Month(n), true
	}
	return CanonicalMonth(s)
}
