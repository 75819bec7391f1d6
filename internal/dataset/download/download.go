// Package download refreshes a local copy of the dataset over HTTP and reads
// it, falling back to the copy already on disk when the fetch fails.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"wolfstats/internal/core"
	"wolfstats/internal/dataset"
	"wolfstats/internal/dataset/csvfile"
	applog "wolfstats/internal/log"
)

// DefaultTimeout bounds a single fetch.
const DefaultTimeout = 30 * time.Second

// ErrBadStatus is returned for non-2xx responses.
var ErrBadStatus = errors.New("unexpected HTTP status")

type Source struct {
	url    string
	path   string
	client *http.Client
	logger *applog.Logger
}

var _ dataset.IncidentReader = (*Source)(nil)

type Option func(*Source)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Source) { s.client = c }
}

func WithLogger(l *applog.Logger) Option {
	return func(s *Source) { s.logger = l.WithComponent(applog.ComponentDownload) }
}

// New returns a source fetching url into path.
func New(url, path string, opts ...Option) *Source {
	s := &Source{
		url:    url,
		path:   path,
		client: &http.Client{Timeout: DefaultTimeout},
		logger: applog.Discard(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ReadIncidents fetches the dataset once and parses the local copy. A failed
// fetch is logged and the previous copy is used; without one the error wraps
// dataset.ErrSourceUnavailable and names both the URL and the path.
func (s *Source) ReadIncidents(ctx context.Context) ([]core.IncidentRecord, error) {
	fetchErr := s.Fetch(ctx)
	if fetchErr != nil {
		if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: download %s failed (%v) and no local copy at %s",
				dataset.ErrSourceUnavailable, s.url, fetchErr, s.path)
		}
		s.logger.WarnContext(ctx, "Download failed, using local copy",
			applog.FieldURL, s.url,
			applog.FieldPath, s.path,
			applog.FieldError, fetchErr)
	}
	return csvfile.New(s.path).ReadIncidents(ctx)
}

// Fetch downloads the dataset and atomically replaces the local copy.
func (s *Source) Fetch(ctx context.Context) error {
	if s.url == "" {
		return errors.New("no dataset URL configured")
	}
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	n, err := writeAtomic(s.path, resp.Body)
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Dataset downloaded",
		applog.FieldURL, s.url,
		applog.FieldPath, s.path,
		"bytes", n,
		applog.FieldDuration, time.Since(start).Milliseconds())
	return nil
}

func writeAtomic(path string, body io.Reader) (int64, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create dataset directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".dataset-*.csv")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, fmt.Errorf("write dataset: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, fmt.Errorf("replace dataset: %w", err)
	}
	return n, nil
}
