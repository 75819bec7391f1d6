package aggregate

import (
	"time"

	"wolfstats/internal/core"
)

// Predicate selects augmented records.
type Predicate func(core.AugmentedRecord) bool

// Filter returns the records satisfying every predicate, in input order.
func Filter(records []core.AugmentedRecord, preds ...Predicate) []core.AugmentedRecord {
	var out []core.AugmentedRecord
next:
	for _, r := range records {
		for _, p := range preds {
			if !p(r) {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}

// InMonth keeps records attributed to m.
func InMonth(m time.Month) Predicate {
	return func(r core.AugmentedRecord) bool {
		got, ok := monthOf(r)
		return ok && got == m
	}
}

// WithoutMonth keeps records whose date did not yield a month.
func WithoutMonth() Predicate {
	return func(r core.AugmentedRecord) bool {
		_, ok := monthOf(r)
		return !ok
	}
}

// WithGender keeps records naming at least one victim of g. For Unknown the
// record must also have no gendered victims; All keeps any record with a
// victim.
func WithGender(g core.Gender) Predicate {
	return func(r core.AugmentedRecord) bool {
		if g == core.Unknown {
			return r.Counts.Male == 0 && r.Counts.Female == 0 && r.Counts.Unknown > 0
		}
		return r.Counts.Of(g) > 0
	}
}
