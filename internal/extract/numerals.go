package extract

import "strconv"

type numeral struct {
	word  string
	value int
}

// numerals is ordered; rules that scan it take the first hit.
var numerals = []numeral{
	{"one", 1}, {"two", 2}, {"three", 3}, {"four", 4}, {"five", 5},
	{"six", 6}, {"seven", 7}, {"eight", 8}, {"nine", 9}, {"ten", 10},
	{"eleven", 11}, {"twelve", 12}, {"thirteen", 13}, {"fourteen", 14}, {"fifteen", 15},
}

// resolveCount reads a digit string or a number word.
func resolveCount(word string) (int, bool) {
	if isDigits(word) {
		n, err := strconv.Atoi(word)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	for _, n := range numerals {
		if n.word == word {
			return n.value, true
		}
	}
	return 0, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
