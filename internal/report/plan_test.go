package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wolfstats/internal/chart"
	"wolfstats/internal/core"
)

func TestLoadPlanDefault(t *testing.T) {
	p, err := LoadPlan("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPlan(), p)
}

func TestParsePlanOmittedFieldsKeepDefaults(t *testing.T) {
	p, err := ParsePlan([]byte("filters:\n  - gender: unknown\n    month: mar\n"))
	require.NoError(t, err)

	def := DefaultPlan()
	require.NoError(t, def.Validate())
	assert.Equal(t, def.Charts, p.Charts)
	assert.Equal(t, chart.Victims, p.Summary.Metric)
	assert.False(t, p.Summary.Disabled)
	require.Len(t, p.Filters, 1)
	assert.Equal(t, "records in March with unknown victims", p.Filters[0].Title())
}

func TestParsePlanEmptyDocument(t *testing.T) {
	p, err := ParsePlan(nil)
	require.NoError(t, err)
	def := DefaultPlan()
	require.NoError(t, def.Validate())
	assert.Equal(t, def, p)
}

func TestParsePlanFull(t *testing.T) {
	doc := `
charts:
  - kind: stacked
    metric: victims
  - kind: line
    genders: [female]
    file: female.html
summary:
  disabled: true
publish:
  metric: victims
  genders: [unknown]
`
	p, err := ParsePlan([]byte(doc))
	require.NoError(t, err)
	require.Len(t, p.Charts, 2)
	assert.Equal(t, chart.Stacked, p.Charts[0].Kind)
	assert.Equal(t, []core.Gender{core.Male, core.Female, core.Unknown}, p.Charts[0].Genders)
	assert.Equal(t, "stacked_victims.html", p.Charts[0].File)
	assert.Equal(t, "Number of Female Wolf Attacks by Month", p.Charts[1].Title)
	assert.True(t, p.Summary.Disabled)
	assert.Equal(t, chart.Victims, p.Summary.Metric)
	assert.Equal(t, []core.Gender{core.Unknown}, p.Publish.Genders)
}

func TestParsePlanExplicitEmptyCharts(t *testing.T) {
	p, err := ParsePlan([]byte("charts: []\n"))
	require.NoError(t, err)
	assert.Empty(t, p.Charts)
}

func TestParsePlanErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "charts: [\n"},
		{"unknown kind", "charts:\n  - kind: pie\n"},
		{"duplicate file", "charts:\n  - kind: line\n    file: a.html\n  - kind: grouped\n    file: a.html\n"},
		{"unknown month", "filters:\n  - month: Smarch\n"},
		{"month with no_month", "filters:\n  - month: May\n    no_month: true\n"},
		{"unknown gender", "filters:\n  - gender: wolf\n"},
		{"unknown summary metric", "summary:\n  metric: deaths\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePlan([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidPlan)
		})
	}
}

func TestLoadPlanFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("summary:\n  metric: attacks\n"), 0o644))
	p, err := LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, chart.Attacks, p.Summary.Metric)

	_, err = LoadPlan(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFilterPredicates(t *testing.T) {
	preds, err := FilterPlan{Month: "11", Gender: "FEMALE"}.Predicates()
	require.NoError(t, err)
	require.Len(t, preds, 2)

	rec := core.AugmentedRecord{Counts: core.VictimCounts{Female: 1}, Month: time.November, HasMonth: true}
	for _, p := range preds {
		assert.True(t, p(rec))
	}

	assert.Equal(t, "records without a month", FilterPlan{NoMonth: true}.Title())
	assert.Equal(t, "custom", FilterPlan{Name: "custom", NoMonth: true}.Title())
}
