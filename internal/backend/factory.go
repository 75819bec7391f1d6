package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"wolfstats/internal/dataset"
	"wolfstats/internal/dataset/csvfile"
	"wolfstats/internal/dataset/download"
	gsheet "wolfstats/internal/dataset/google"
	"wolfstats/internal/dataset/memory"
	applog "wolfstats/internal/log"
	"wolfstats/internal/storage"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger     *applog.Logger
	httpClient *http.Client
}

// NewFactory creates a new backend factory
func NewFactory(logger *applog.Logger) *DefaultFactory {
	if logger == nil {
		logger = applog.Discard()
	}
	return &DefaultFactory{
		logger: logger.WithComponent(applog.ComponentBackend),
	}
}

// WithHTTPClient overrides the client used by the download backend.
func (f *DefaultFactory) WithHTTPClient(c *http.Client) *DefaultFactory {
	f.httpClient = c
	return f
}

var _ Factory = (*DefaultFactory)(nil)

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case CSVBackend:
		return f.createCSVBackend(config)
	case DownloadBackend:
		return f.createDownloadBackend(config)
	case SQLiteBackend:
		return f.createSQLiteBackend(config)
	case SheetsBackend:
		return f.createSheetsBackend(ctx, config)
	case MemoryBackend:
		return f.createMemoryBackend(ctx, config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

// OpenStore opens the sqlite store that `import` writes into.
func (f *DefaultFactory) OpenStore(config Config) (*storage.SQLiteRepository, error) {
	if config.SQLiteDBPath == "" {
		return nil, errors.New("SQLite database path is required for import")
	}
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}
	return repo, nil
}

func (f *DefaultFactory) createCSVBackend(config Config) (*BackendResult, error) {
	f.logger.Info("Initialized CSV backend", applog.FieldPath, config.DatasetPath)
	return &BackendResult{Source: csvfile.New(config.DatasetPath)}, nil
}

func (f *DefaultFactory) createDownloadBackend(config Config) (*BackendResult, error) {
	client := f.httpClient
	if client == nil {
		timeout := config.HTTPTimeout
		if timeout <= 0 {
			timeout = download.DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	src := download.New(config.DatasetURL, config.DatasetPath,
		download.WithHTTPClient(client),
		download.WithLogger(f.logger))

	f.logger.Info("Initialized download backend",
		applog.FieldURL, config.DatasetURL,
		applog.FieldPath, config.DatasetPath)
	return &BackendResult{Source: src}, nil
}

func (f *DefaultFactory) createSQLiteBackend(config Config) (*BackendResult, error) {
	repo, err := f.OpenStore(config)
	if err != nil {
		return nil, err
	}
	f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)
	return &BackendResult{
		Source:  repo,
		Cleanup: repo.Close,
	}, nil
}

func (f *DefaultFactory) createSheetsBackend(ctx context.Context, config Config) (*BackendResult, error) {
	cli, err := gsheet.NewFromConfig(ctx, gsheet.Config{
		SpreadsheetID:   config.GoogleSpreadsheetID,
		SheetName:       config.GoogleSheetName,
		CredentialsJSON: config.GoogleServiceAccountJSON,
		CredentialsFile: config.GoogleServiceAccountFile,
	}, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Google Sheets client: %w", err)
	}

	f.logger.Info("Initialized Google Sheets backend")
	return &BackendResult{Source: cli}, nil
}

// createMemoryBackend seeds the store from DatasetPath when that file is
// readable and starts empty otherwise.
func (f *DefaultFactory) createMemoryBackend(ctx context.Context, config Config) (*BackendResult, error) {
	store := memory.New()
	if config.DatasetPath != "" {
		records, err := csvfile.New(config.DatasetPath).ReadIncidents(ctx)
		switch {
		case err == nil:
			if err := store.ReplaceIncidents(ctx, records); err != nil {
				return nil, err
			}
		case errors.Is(err, dataset.ErrSourceUnavailable):
			f.logger.Warn("Memory backend starts empty", applog.FieldPath, config.DatasetPath)
		default:
			return nil, fmt.Errorf("seed memory backend: %w", err)
		}
	}

	f.logger.Info("Initialized memory backend", applog.FieldPath, config.DatasetPath)
	return &BackendResult{Source: store}, nil
}
