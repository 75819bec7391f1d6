package download

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wolfstats/internal/dataset"
)

const datasetURL = "https://example.org/global_wolves.csv"

func setup(t *testing.T) (*http.Client, string) {
	t.Helper()
	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	t.Cleanup(httpmock.DeactivateAndReset)
	return client, filepath.Join(t.TempDir(), "data", "global_wolves.csv")
}

func TestReadIncidentsDownloads(t *testing.T) {
	client, path := setup(t)
	httpmock.RegisterResponder("GET", datasetURL,
		httpmock.NewStringResponder(http.StatusOK, "Date,Victims\nMarch 1996,2 boys\n"))

	got, err := New(datasetURL, path, WithHTTPClient(client)).ReadIncidents(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2 boys", got[0].Victims)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())

	_, err = os.Stat(path)
	assert.NoError(t, err, "local copy should be written")
}

func TestReadIncidentsFallsBackToLocalCopy(t *testing.T) {
	client, path := setup(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("Date,Victims\nJune 2001,a woman\n"), 0o644))

	tests := []struct {
		name      string
		responder httpmock.Responder
	}{
		{"server error", httpmock.NewStringResponder(http.StatusInternalServerError, "oops")},
		{"network error", httpmock.NewErrorResponder(errors.New("connection refused"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Reset()
			httpmock.RegisterResponder("GET", datasetURL, tt.responder)

			got, err := New(datasetURL, path, WithHTTPClient(client)).ReadIncidents(context.Background())
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "a woman", got[0].Victims)
			// No retries.
			assert.Equal(t, 1, httpmock.GetTotalCallCount())
		})
	}
}

func TestReadIncidentsUnavailable(t *testing.T) {
	client, path := setup(t)
	httpmock.RegisterResponder("GET", datasetURL, httpmock.NewStringResponder(http.StatusNotFound, ""))

	_, err := New(datasetURL, path, WithHTTPClient(client)).ReadIncidents(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrSourceUnavailable)
	assert.Contains(t, err.Error(), datasetURL)
	assert.Contains(t, err.Error(), path)
}

func TestFetchRejectsBadStatus(t *testing.T) {
	client, path := setup(t)
	httpmock.RegisterResponder("GET", datasetURL, httpmock.NewStringResponder(http.StatusForbidden, ""))

	err := New(datasetURL, path, WithHTTPClient(client)).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrBadStatus)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
