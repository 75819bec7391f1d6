package extract

import (
	"regexp"
	"strconv"
	"strings"

	"wolfstats/internal/core"
)

// Rule names, in evaluation order.
const (
	RuleDigitPlural   = "digit-plural"
	RuleArticle       = "article"
	RuleWordNumeral   = "word-numeral"
	RuleCommaListed   = "comma-listed"
	RuleConcatenated  = "concatenated"
	RuleImpliedPlural = "implied-plural"
)

type synonym struct {
	digit    *regexp.Regexp
	articles []*regexp.Regexp
	numerals []*regexp.Regexp // parallel to numerals
}

// lexicon holds the compiled patterns for one gender.
type lexicon struct {
	gender   core.Gender
	synonyms []synonym
	comma    *regexp.Regexp
	concat   *regexp.Regexp
	implied  *regexp.Regexp
	// concat hits preceded by this prefix belong to another word, so
	// "femaleX" is never a male hit.
	notAfter string
}

var irregularPlurals = map[string]string{"man": "men", "woman": "women"}

func plural(word string) string {
	if p, ok := irregularPlurals[word]; ok {
		return p
	}
	if strings.HasSuffix(word, "s") || strings.HasSuffix(word, "men") {
		return word
	}
	return word + "s"
}

func newLexicon(g core.Gender, word, notAfter string, synonyms []string, articles []string) *lexicon {
	l := &lexicon{
		gender: g,
		comma:  regexp.MustCompile(`,\s*\d*\s*` + word),
		// The word may be capitalised ("MaleJohn"); the glued name must be.
		concat: regexp.MustCompile(`(?i:` + word + `)[A-Z]`),
		// \b keeps "two females" from implying two males.
		implied:  regexp.MustCompile(`\band\s+\w+[^,]*,?\s*(?:adult\s+)?\b` + word + `s\b`),
		notAfter: notAfter,
	}
	for _, s := range synonyms {
		q := regexp.QuoteMeta(s)
		syn := synonym{
			digit: regexp.MustCompile(`(\d+)\s+` + regexp.QuoteMeta(plural(s)) + `\b`),
		}
		for _, a := range articles {
			syn.articles = append(syn.articles, regexp.MustCompile(a+q+`\b`))
		}
		for _, n := range numerals {
			syn.numerals = append(syn.numerals, regexp.MustCompile(`\b`+n.word+`\s+`+q+`s?`))
		}
		l.synonyms = append(l.synonyms, syn)
	}
	return l
}

var (
	maleLexicon = newLexicon(core.Male, "male", "fe",
		[]string{"male", "man", "men", "boy", "boys"},
		[]string{`\b(?:a|an|adult)\s+`},
	)
	femaleLexicon = newLexicon(core.Female, "female", "",
		[]string{"female", "woman", "women", "girl", "girls"},
		[]string{`(?:^|[,\s])(?:a|an)\s+`, `\band\s+a\s+`, `\badult\s+`},
	)
)

// digitPlural finds "<digits> <plural synonym>" for the first synonym that
// has one.
func (l *lexicon) digitPlural(t Text) (int, bool) {
	for _, s := range l.synonyms {
		m := s.digit.FindStringSubmatch(t.Lower)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return n, true
	}
	return 0, false
}

// articles adds one for every (synonym, article pattern) pair that matches.
// Female patterns overlap, so "and a woman" counts twice.
func (l *lexicon) articles(t Text) (int, bool) {
	total := 0
	for _, s := range l.synonyms {
		for _, re := range s.articles {
			if re.MatchString(t.Lower) {
				total++
			}
		}
	}
	return total, total > 0
}

// wordNumeral takes the first "<number word> <synonym>" hit, synonyms outer.
func (l *lexicon) wordNumeral(t Text) (int, bool) {
	for _, s := range l.synonyms {
		for i, re := range s.numerals {
			if re.MatchString(t.Lower) {
				return numerals[i].value, true
			}
		}
	}
	return 0, false
}

// commaListed counts singular mentions in a comma enumeration such as
// "Anna, female, Ivan, male".
func (l *lexicon) commaListed(t Text) (int, bool) {
	n := 0
	for _, loc := range l.comma.FindAllStringIndex(t.Lower, -1) {
		if end := loc[1]; end < len(t.Lower) && t.Lower[end] == 's' {
			continue
		}
		n++
	}
	return n, n > 0
}

// concatenated counts a gender word glued to a following capitalised name,
// e.g. "maleJohn".
func (l *lexicon) concatenated(t Text) (int, bool) {
	n := 0
	for _, loc := range l.concat.FindAllStringIndex(t.Raw, -1) {
		if p := len(l.notAfter); p > 0 && loc[0] >= p && strings.EqualFold(t.Raw[loc[0]-p:loc[0]], l.notAfter) {
			continue
		}
		n++
	}
	return n, n > 0
}

// impliedPlural assumes "and ... males" names at least two people.
func (l *lexicon) impliedPlural(t Text) (int, bool) {
	if l.implied.MatchString(t.Lower) {
		return 2, true
	}
	return 0, false
}

// count applies the layers in order. The first three are mutually
// exclusive; the edge cases only fill in when they found nothing.
func (l *lexicon) count(t Text) int {
	n, ok := l.digitPlural(t)
	if !ok {
		n, _ = l.articles(t)
		if n == 0 {
			n, _ = l.wordNumeral(t)
		}
	}
	if n == 0 {
		listed, _ := l.commaListed(t)
		joined, _ := l.concatenated(t)
		n = max(listed, joined)
	}
	if n == 0 {
		n, _ = l.impliedPlural(t)
	}
	return n
}

func lexiconFor(g core.Gender) *lexicon {
	switch g {
	case core.Male:
		return maleLexicon
	case core.Female:
		return femaleLexicon
	}
	return nil
}

// GenderRules returns the individual layers used for g, in evaluation order.
// It returns nil for genders without a synonym list.
func GenderRules(g core.Gender) []Matcher {
	l := lexiconFor(g)
	if l == nil {
		return nil
	}
	return []Matcher{
		{Name: RuleDigitPlural, Match: l.digitPlural},
		{Name: RuleArticle, Match: l.articles},
		{Name: RuleWordNumeral, Match: l.wordNumeral},
		{Name: RuleCommaListed, Match: l.commaListed},
		{Name: RuleConcatenated, Match: l.concatenated},
		{Name: RuleImpliedPlural, Match: l.impliedPlural},
	}
}
