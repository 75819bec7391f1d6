// Package memory keeps the incident dataset in process.
package memory

import (
	"context"
	"maps"
	"sync"

	"wolfstats/internal/core"
	"wolfstats/internal/dataset"
)

type Store struct {
	mu    sync.Mutex
	items []core.IncidentRecord
}

var _ dataset.IncidentStore = (*Store)(nil)

// New seeds the store. Records without a row number are numbered by position.
func New(records ...core.IncidentRecord) *Store {
	s := &Store{}
	s.items = cloneAll(records)
	return s
}

// FromDescriptions builds a store from (date, victims) pairs.
func FromDescriptions(pairs ...[2]string) *Store {
	records := make([]core.IncidentRecord, 0, len(pairs))
	for _, p := range pairs {
		records = append(records, core.IncidentRecord{Date: p[0], Victims: p[1]})
	}
	return New(records...)
}

func (s *Store) ReadIncidents(_ context.Context) ([]core.IncidentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.items), nil
}

func (s *Store) ReplaceIncidents(_ context.Context, records []core.IncidentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = cloneAll(records)
	return nil
}

func cloneAll(in []core.IncidentRecord) []core.IncidentRecord {
	out := make([]core.IncidentRecord, len(in))
	for i, r := range in {
		if r.Row == 0 {
			r.Row = i + 1
		}
		r.Fields = maps.Clone(r.Fields)
		out[i] = r
	}
	return out
}
