package extract

import (
	"regexp"
	"strconv"
)

const (
	RuleAndOthers       = "and-others"
	RuleSingleResident  = "single-person"
	RuleAdultsChildren  = "adults-and-children"
	RuleCountedKeywords = "counted-keyword"
)

var (
	andOthersPattern      = regexp.MustCompile(`\band\s+(\w+)\s+others?`)
	singlePersonPattern   = regexp.MustCompile(`\b(?:one|a|an)\s+(?:resident|person|individual)\b`)
	adultsChildrenPattern = regexp.MustCompile(`(\w+)\s+adults?\s+and\s+(\w+)\s+children`)
)

type keywordPatterns struct {
	digit    *regexp.Regexp
	numerals []*regexp.Regexp
}

var countedKeywords = func() []keywordPatterns {
	var out []keywordPatterns
	for _, kw := range []string{"people", "residents", "victims", "persons", "individuals", "children"} {
		kp := keywordPatterns{digit: regexp.MustCompile(`(\d+)\s+` + kw)}
		for _, n := range numerals {
			kp.numerals = append(kp.numerals, regexp.MustCompile(`\b`+n.word+`\s+`+kw))
		}
		out = append(out, kp)
	}
	return out
}()

// UnknownRules decide the ungendered victim count. They only run when no
// gendered victim was found. The first rule whose pattern matches decides the
// count, even when its number words do not resolve.
var UnknownRules = []Matcher{
	{Name: RuleAndOthers, Match: andOthers},
	{Name: RuleSingleResident, Match: singlePerson},
	{Name: RuleAdultsChildren, Match: adultsAndChildren},
	{Name: RuleCountedKeywords, Match: countedKeyword},
}

// andOthers reads "Name and three others" as the named person plus three.
// "and several others" matches but counts nobody.
func andOthers(t Text) (int, bool) {
	m := andOthersPattern.FindStringSubmatch(t.Lower)
	if m == nil {
		return 0, false
	}
	n, ok := resolveCount(m[1])
	if !ok {
		return 0, true
	}
	return n + 1, true
}

func singlePerson(t Text) (int, bool) {
	if singlePersonPattern.MatchString(t.Lower) {
		return 1, true
	}
	return 0, false
}

func adultsAndChildren(t Text) (int, bool) {
	m := adultsChildrenPattern.FindStringSubmatch(t.Lower)
	if m == nil {
		return 0, false
	}
	adults, _ := resolveCount(m[1])
	children, _ := resolveCount(m[2])
	return adults + children, true
}

// countedKeyword takes the first "<number> people" style hit, keywords outer.
// A digit hit is final even when it is 0.
func countedKeyword(t Text) (int, bool) {
	for _, kp := range countedKeywords {
		if m := kp.digit.FindStringSubmatch(t.Lower); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return 0, true
			}
			return n, true
		}
		for i, re := range kp.numerals {
			if re.MatchString(t.Lower) {
				return numerals[i].value, true
			}
		}
	}
	return 0, false
}
