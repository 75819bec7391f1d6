package csvfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wolfstats/internal/dataset"
)

const sample = "\ufeffCountry,DATE,victims,Details\n" +
	"India,March 1996,\"3 boys, a girl\",rabid\n" +
	"Iran,Summer 2003,a man\n" +
	"Italy,,\n"

func TestReadIncidents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wolves.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	got, err := New(path).ReadIncidents(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "3 boys, a girl", got[0].Victims)
	assert.Equal(t, "March 1996", got[0].Date)
	assert.Equal(t, "India", got[0].Field("Country"))
	assert.Equal(t, "rabid", got[0].Field("details"))

	// Short rows keep the columns they have.
	assert.Equal(t, "a man", got[1].Victims)
	assert.Equal(t, "", got[1].Field("Details"))
	assert.Equal(t, 3, got[2].Row)
	assert.Empty(t, got[2].Victims)
}

func TestReadIncidentsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.csv")
	_, err := New(path).ReadIncidents(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, dataset.ErrSourceUnavailable))
	assert.Contains(t, err.Error(), path)
}

func TestParseMissingColumn(t *testing.T) {
	_, err := Parse(strings.NewReader("Country,Date\nIndia,1996\n"))
	assert.ErrorIs(t, err, dataset.ErrMissingColumn)
}
