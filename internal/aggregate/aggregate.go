// Package aggregate groups augmented records by calendar month.
package aggregate

import (
	"time"

	"wolfstats/internal/core"
)

// Monthly sums victim counts per canonical month. Records whose month could
// not be determined are left out and counted in Excluded.
func Monthly(records []core.AugmentedRecord) core.MonthlyAggregate {
	var agg core.MonthlyAggregate
	for _, r := range records {
		m, ok := monthOf(r)
		if !ok {
			agg.Excluded++
			continue
		}
		agg.Counts[m-1] = agg.Counts[m-1].Add(r.Counts)
	}
	return agg
}

// Attacks counts, per month, the records naming at least one victim of each
// gender. The All series counts every record with a month.
func Attacks(records []core.AugmentedRecord) core.MonthlyAttacks {
	var a core.MonthlyAttacks
	for _, r := range records {
		m, ok := monthOf(r)
		if !ok {
			continue
		}
		i := m - 1
		a.All[i]++
		if r.Counts.Male > 0 {
			a.Male[i]++
		}
		if r.Counts.Female > 0 {
			a.Female[i]++
		}
		if r.Counts.Unknown > 0 {
			a.Unknown[i]++
		}
	}
	return a
}

// monthOf resolves the canonical month, falling back to the label for
// records that were built without a Transformer.
func monthOf(r core.AugmentedRecord) (time.Month, bool) {
	if r.HasMonth {
		return r.Month, r.Month >= time.January && r.Month <= time.December
	}
	if r.MonthLabel == "" {
		return 0, false
	}
	return core.CanonicalMonth(r.MonthLabel)
}

// Series flattens attack counts into chart triples, January first, with
// genders in the order given.
func Series(a core.MonthlyAttacks, genders ...core.Gender) []core.SeriesPoint {
	out := make([]core.SeriesPoint, 0, len(core.Months)*len(genders))
	for _, m := range core.Months {
		for _, g := range genders {
			out = append(out, core.SeriesPoint{
				Month:       m.String(),
				Gender:      g.String(),
				AttackCount: a.Get(m, g),
			})
		}
	}
	return out
}

// VictimSeries is Series over summed victim counts instead of attack counts.
func VictimSeries(agg core.MonthlyAggregate, genders ...core.Gender) []core.SeriesPoint {
	out := make([]core.SeriesPoint, 0, len(core.Months)*len(genders))
	for _, m := range core.Months {
		c := agg.Get(m)
		for _, g := range genders {
			out = append(out, core.SeriesPoint{
				Month:       m.String(),
				Gender:      g.String(),
				AttackCount: c.Of(g),
			})
		}
	}
	return out
}
