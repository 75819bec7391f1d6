package extract

import (
	"regexp"
	"strings"

	"wolfstats/internal/core"
)

var (
	andWord      = regexp.MustCompile(`(?i)\band\b`)
	monthPattern = regexp.MustCompile(`(?i)\b(?:` + monthAlternatives() + `)\b`)
)

// monthAlternatives builds "jan(?:u(?:a(?:r(?:y)?)?)?)?|feb..." so any prefix
// of a month name with at least three letters matches.
func monthAlternatives() string {
	alts := make([]string, 0, len(core.Months))
	for _, m := range core.Months {
		name := strings.ToLower(m.String())
		var b strings.Builder
		b.WriteString(name[:3])
		for _, r := range name[3:] {
			b.WriteString("(?:")
			b.WriteRune(r)
		}
		for range name[3:] {
			b.WriteString(")?")
		}
		alts = append(alts, b.String())
	}
	return strings.Join(alts, "|")
}

// Month returns the first month token of a date description exactly as it
// appears in the text. Ranges ("June 1764 – June 1767") and multi-date
// entries joined by "and" yield no month.
func Month(date string) (string, bool) {
	if strings.ContainsAny(date, "-–") || andWord.MatchString(date) {
		return "", false
	}
	m := monthPattern.FindString(date)
	if m == "" {
		return "", false
	}
	return m, true
}
