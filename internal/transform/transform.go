// Package transform applies the extractors to every record of a dataset.
package transform

import (
	"wolfstats/internal/cache"
	"wolfstats/internal/core"
	"wolfstats/internal/extract"
)

// Transformer augments incident records. The zero value works without a memo.
type Transformer struct {
	memo cache.Cache[core.VictimCounts]
}

// New returns a Transformer that memoizes victim counts per description when
// memo is non-nil. Extraction is pure, so cached results never go stale.
func New(memo cache.Cache[core.VictimCounts]) *Transformer {
	return &Transformer{memo: memo}
}

// Transform returns one augmented record per input record, in input order.
func (t *Transformer) Transform(records []core.IncidentRecord) []core.AugmentedRecord {
	out := make([]core.AugmentedRecord, len(records))
	for i, r := range records {
		out[i] = t.Augment(r)
	}
	return out
}

// Augment derives counts and month for a single record.
func (t *Transformer) Augment(r core.IncidentRecord) core.AugmentedRecord {
	a := core.AugmentedRecord{
		IncidentRecord: r,
		Counts:         t.victims(r.Victims),
	}
	if label, ok := extract.Month(r.Date); ok {
		a.MonthLabel = label
		a.Month, a.HasMonth = core.CanonicalMonth(label)
	}
	return a
}

func (t *Transformer) victims(description string) core.VictimCounts {
	if description == "" {
		return core.VictimCounts{}
	}
	if t.memo == nil {
		return extract.Victims(description)
	}
	if c, ok := t.memo.Get(description); ok {
		return c
	}
	c := extract.Victims(description)
	t.memo.Set(description, c)
	return c
}
