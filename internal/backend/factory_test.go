package backend

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wolfstats/internal/config"
	"wolfstats/internal/core"
	"wolfstats/internal/dataset"
	"wolfstats/internal/dataset/csvfile"
	"wolfstats/internal/dataset/download"
	"wolfstats/internal/dataset/memory"
	"wolfstats/internal/storage"
)

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wolves.csv")
	require.NoError(t, os.WriteFile(path, []byte("Date,Victims\nMarch 1996,3 boys\n"), 0o644))
	return path
}

func TestCreateBackendTypes(t *testing.T) {
	path := writeCSV(t)
	f := NewFactory(nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		config Config
		check  func(t *testing.T, src dataset.IncidentReader)
	}{
		{"csv", Config{Type: CSVBackend, DatasetPath: path}, func(t *testing.T, src dataset.IncidentReader) {
			assert.IsType(t, &csvfile.Reader{}, src)
		}},
		{"download", Config{Type: DownloadBackend, DatasetPath: path, DatasetURL: "http://x"}, func(t *testing.T, src dataset.IncidentReader) {
			assert.IsType(t, &download.Source{}, src)
		}},
		{"sqlite", Config{Type: SQLiteBackend, SQLiteDBPath: filepath.Join(t.TempDir(), "w.db")}, func(t *testing.T, src dataset.IncidentReader) {
			assert.IsType(t, &storage.SQLiteRepository{}, src)
		}},
		{"memory", Config{Type: MemoryBackend, DatasetPath: path}, func(t *testing.T, src dataset.IncidentReader) {
			require.IsType(t, &memory.Store{}, src)
			got, err := src.ReadIncidents(ctx)
			require.NoError(t, err)
			assert.Len(t, got, 1)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := f.CreateBackend(ctx, tt.config)
			require.NoError(t, err)
			t.Cleanup(func() { res.Close() })
			tt.check(t, res.Source)
		})
	}
}

func TestCreateBackendRejectsInvalidConfig(t *testing.T) {
	f := NewFactory(nil)
	_, err := f.CreateBackend(context.Background(), Config{Type: "ftp"})
	assert.Error(t, err)
	_, err = f.CreateBackend(context.Background(), Config{Type: DownloadBackend, DatasetPath: "x.csv"})
	assert.EqualError(t, err, "dataset URL is required for download backend")
}

func TestMemoryBackendWithoutSeedFile(t *testing.T) {
	res, err := NewFactory(nil).CreateBackend(context.Background(),
		Config{Type: MemoryBackend, DatasetPath: filepath.Join(t.TempDir(), "none.csv")})
	require.NoError(t, err)
	got, err := res.Source.ReadIncidents(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpenStoreImportRoundTrip(t *testing.T) {
	cfg := Config{Type: SQLiteBackend, SQLiteDBPath: filepath.Join(t.TempDir(), "w.db")}
	f := NewFactory(nil)
	store, err := f.OpenStore(cfg)
	require.NoError(t, err)
	require.NoError(t, store.ReplaceIncidents(context.Background(), []core.IncidentRecord{{Victims: "a man"}}))
	require.NoError(t, store.Close())

	res, err := f.CreateBackend(context.Background(), cfg)
	require.NoError(t, err)
	defer res.Close()
	got, err := res.Source.ReadIncidents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a man", got[0].Victims)
}

func TestFromAppConfig(t *testing.T) {
	_, err := FromAppConfig(nil)
	assert.Error(t, err)

	_, err = FromAppConfig(&config.Config{DataBackend: "bogus"})
	assert.Error(t, err)

	cfg, err := FromAppConfig(&config.Config{DataBackend: "download", DatasetURL: "http://x", DatasetPath: "p.csv"})
	require.NoError(t, err)
	assert.Equal(t, DownloadBackend, cfg.Type)
	assert.Equal(t, "http://x", cfg.DatasetURL)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, config.Backends, GetBackendTypeStrings())
}
