package extract

import (
	"strings"

	"wolfstats/internal/core"
)

// couplePhrases name one man and one woman.
var couplePhrases = []string{"his wife", "her husband"}

// Victims estimates how many male, female and ungendered victims a
// description mentions. The result is an approximation; phrasing outside
// the recognised patterns is under- or over-counted.
func Victims(description string) core.VictimCounts {
	t := Normalize(description)
	c := core.VictimCounts{
		Male:   maleLexicon.count(t),
		Female: femaleLexicon.count(t),
	}
	for _, p := range couplePhrases {
		if strings.Contains(t.Lower, p) {
			c.Male = max(c.Male, 1)
			c.Female = max(c.Female, 1)
		}
	}
	// Ungendered victims are only counted when nobody was gendered, so mixed
	// descriptions undercount the total.
	if c.Male == 0 && c.Female == 0 {
		c.Unknown, _, _ = First(t, UnknownRules)
	}
	return c
}
