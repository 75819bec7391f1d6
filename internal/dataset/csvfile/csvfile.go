// Package csvfile reads the incident dataset from a local CSV file.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"wolfstats/internal/core"
	"wolfstats/internal/dataset"
)

type Reader struct {
	path string
}

var _ dataset.IncidentReader = (*Reader)(nil)

func New(path string) *Reader {
	return &Reader{path: path}
}

func (r *Reader) Path() string { return r.path }

// ReadIncidents parses the file at the configured path. A missing file is
// reported as dataset.ErrSourceUnavailable.
func (r *Reader) ReadIncidents(_ context.Context) ([]core.IncidentRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: no file at %s", dataset.ErrSourceUnavailable, r.path)
		}
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}
	return records, nil
}

// Parse reads a CSV stream whose first row is the header.
func Parse(in io.Reader) ([]core.IncidentRecord, error) {
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", dataset.ErrSourceUnavailable)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var rows [][]string
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, row)
	}
	return dataset.FromRows(header, rows)
}
