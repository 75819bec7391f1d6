// Package dataset defines the tabular incident sources and the helpers they
// share for mapping header rows onto records.
package dataset

import (
	"context"
	"errors"

	"wolfstats/internal/core"
)

// Column names every source must expose. Matching is case-insensitive.
const (
	ColumnDate    = "Date"
	ColumnVictims = "Victims"
)

var (
	// ErrSourceUnavailable is returned when no copy of the dataset can be read.
	ErrSourceUnavailable = errors.New("dataset unavailable")
	// ErrMissingColumn is returned when a required column is absent from the header.
	ErrMissingColumn = errors.New("missing column")
)

// Ports for inbound dataset adapters.
type (
	IncidentReader interface {
		// ReadIncidents returns every record of the source in row order.
		ReadIncidents(ctx context.Context) ([]core.IncidentRecord, error)
	}

	// IncidentWriter replaces the stored dataset with records.
	IncidentWriter interface {
		ReplaceIncidents(ctx context.Context, records []core.IncidentRecord) error
	}

	IncidentStore interface {
		IncidentReader
		IncidentWriter
	}
)
