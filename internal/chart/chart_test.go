package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wolfstats/internal/core"
)

func points() []core.SeriesPoint {
	return []core.SeriesPoint{
		{Month: "March", Gender: "male", AttackCount: 4},
		{Month: "March", Gender: "female", AttackCount: 2},
		{Month: "July", Gender: "unknown", AttackCount: 1},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	tests := []struct {
		kind    Kind
		genders []core.Gender
		title   string
	}{
		{Line, []core.Gender{core.All, core.Female, core.Male}, "Number of Wolf Attacks by Month"},
		{Grouped, []core.Gender{core.Male, core.Female}, "Wolf Attacks by Month and Gender"},
		{Stacked, []core.Gender{core.Male, core.Female, core.Unknown}, "Wolf Attacks by Month, All Genders"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			s, err := Spec{Kind: tt.kind}.Normalize()
			require.NoError(t, err)
			assert.Equal(t, Attacks, s.Metric)
			assert.Equal(t, tt.genders, s.Genders)
			assert.Equal(t, tt.title, s.Title)
			assert.Equal(t, string(tt.kind)+"_attacks.html", s.File)
		})
	}

	s, err := Spec{Kind: Line, Genders: []core.Gender{core.Female}}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "Number of Female Wolf Attacks by Month", s.Title)
}

func TestNormalizeRejects(t *testing.T) {
	for _, s := range []Spec{
		{Kind: "pie"},
		{Kind: Line, Metric: "deaths"},
		{Kind: Stacked, Genders: []core.Gender{core.All}},
		{Kind: Grouped, Genders: []core.Gender{"robot"}},
	} {
		_, err := s.Normalize()
		assert.ErrorIs(t, err, ErrInvalidSpec, "%+v", s)
	}
}

func TestRenderGrouped(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Spec{Kind: Grouped}, points()))

	html := buf.String()
	for _, want := range []string{"Wolf Attacks by Month and Gender", "Number of Attacks", "January", "December", "#1e78b4", "#ff7f0f", "Male", "Female"} {
		assert.Contains(t, html, want)
	}
}

func TestRenderStackedAndLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Spec{Kind: Stacked, Metric: Victims}, points()))
	assert.Contains(t, buf.String(), `"stack":"total"`)
	assert.Contains(t, buf.String(), "Number of Victims")
	assert.Contains(t, buf.String(), "#2ca02c")

	buf.Reset()
	require.NoError(t, Render(&buf, Spec{Kind: Line, Genders: []core.Gender{core.All}}, points()))
	assert.Contains(t, buf.String(), "Number of All Wolf Attacks by Month")
	assert.Contains(t, buf.String(), "#7f7f7f")
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	path, err := WriteFile(dir, Spec{Kind: Grouped, File: "gender.html"}, points())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "gender.html"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(string(b)), "<"))
}

func TestPivotSumsDuplicates(t *testing.T) {
	v := pivot(append(points(), core.SeriesPoint{Month: "March", Gender: "male", AttackCount: 1}))
	assert.Equal(t, 5, v["March"]["male"])
	assert.Equal(t, 0, v["January"]["male"])
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Unknown", Label(core.Unknown))
	assert.Equal(t, "All", Label(core.All))
}
