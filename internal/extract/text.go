package extract

import "strings"

// Text is a description in its original and lower-cased forms. Most rules
// match against Lower; the concatenation rule needs the original casing.
type Text struct {
	Raw   string
	Lower string
}

// Normalize prepares s for matching.
func Normalize(s string) Text {
	return Text{Raw: s, Lower: strings.ToLower(s)}
}

// Matcher is one named heuristic. Match reports a count and whether the rule
// applied at all.
type Matcher struct {
	Name  string
	Match func(Text) (int, bool)
}

// First evaluates ms in order and returns the first result that applied.
func First(t Text, ms []Matcher) (int, string, bool) {
	for _, m := range ms {
		if n, ok := m.Match(t); ok {
			return n, m.Name, true
		}
	}
	return 0, "", false
}
