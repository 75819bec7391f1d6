package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Male    Gender = "male"
	Female  Gender = "female"
	Unknown Gender = "unknown"
	// All matches every victim regardless of gender.
	All Gender = "all"
)

type (
	Gender string

	// IncidentRecord is one row of the source dataset.
	IncidentRecord struct {
		Row     int    // 1-based data row in the source
		Date    string // free text, possibly a range
		Victims string // free-text description of who was attacked
		Fields  map[string]string
	}

	VictimCounts struct {
		Male    int
		Female  int
		Unknown int
	}

	// AugmentedRecord is an IncidentRecord with the values derived from it.
	AugmentedRecord struct {
		IncidentRecord
		Counts     VictimCounts
		MonthLabel string     // literal month text from Date, empty when none
		Month      time.Month // canonical month, valid only when HasMonth
		HasMonth   bool
	}

	// SeriesPoint is one bar or line point of a chart.
	SeriesPoint struct {
		Month       string `json:"month"`
		Gender      string `json:"gender"`
		AttackCount int    `json:"attack_count"`
	}
)

var (
	ErrUnknownGender = errors.New("unknown gender")
)

// Genders lists the concrete genders in display order.
var Genders = []Gender{Male, Female, Unknown}

// ParseGender accepts male, female, unknown and all in any case.
func ParseGender(s string) (Gender, error) {
	switch g := Gender(strings.ToLower(strings.TrimSpace(s))); g {
	case Male, Female, Unknown, All:
		return g, nil
	default:
		return "", ErrUnknownGender
	}
}

func (g Gender) String() string {
	return string(g)
}

// Total returns the number of victims across all genders.
func (c VictimCounts) Total() int {
	return c.Male + c.Female + c.Unknown
}

// Of returns the count for g. All returns the total.
func (c VictimCounts) Of(g Gender) int {
	switch g {
	case Male:
		return c.Male
	case Female:
		return c.Female
	case Unknown:
		return c.Unknown
	case All:
		return c.Total()
	}
	return 0
}

// Add returns the field-wise sum of c and o.
func (c VictimCounts) Add(o VictimCounts) VictimCounts {
	return VictimCounts{
		Male:    c.Male + o.Male,
		Female:  c.Female + o.Female,
		Unknown: c.Unknown + o.Unknown,
	}
}

// Field returns the named source column, matching the name case-insensitively.
func (r IncidentRecord) Field(name string) string {
	if v, ok := r.Fields[name]; ok {
		return v
	}
	for k, v := range r.Fields {
		if strings.EqualFold(strings.TrimSpace(k), name) {
			return v
		}
	}
	return ""
}
