package core

import "time"

// MonthlyAggregate holds summed victim counts for each calendar month.
type MonthlyAggregate struct {
	Counts   [12]VictimCounts
	Excluded int // records without a canonical month
}

// Get returns the counts summed for m.
func (a MonthlyAggregate) Get(m time.Month) VictimCounts {
	if m < time.January || m > time.December {
		return VictimCounts{}
	}
	return a.Counts[m-1]
}

// Total sums every month.
func (a MonthlyAggregate) Total() VictimCounts {
	var t VictimCounts
	for _, c := range a.Counts {
		t = t.Add(c)
	}
	return t
}

// MonthlyAttacks holds, per month, how many records have a non-zero count for
// each gender. All counts every record of the month.
type MonthlyAttacks struct {
	Male    [12]int
	Female  [12]int
	Unknown [12]int
	All     [12]int
}

// Get returns the attack count for g in m.
func (a MonthlyAttacks) Get(m time.Month, g Gender) int {
	if m < time.January || m > time.December {
		return 0
	}
	i := m - 1
	switch g {
	case Male:
		return a.Male[i]
	case Female:
		return a.Female[i]
	case Unknown:
		return a.Unknown[i]
	case All:
		return a.All[i]
	}
	return 0
}
