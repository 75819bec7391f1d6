package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wolfstats/internal/cache"
	"wolfstats/internal/core"
)

func sampleRecords() []core.IncidentRecord {
	return []core.IncidentRecord{
		{Row: 1, Date: "March 3, 1920", Victims: "3 males"},
		{Row: 2, Date: "June 1764 – June 1767", Victims: "a woman and her husband"},
		{Row: 3, Date: "Sept 1881", Victims: "John and two others"},
		{Row: 4, Date: "", Victims: ""},
		{Row: 5, Date: "mar 1921", Victims: "3 males"},
	}
}

func TestTransformPreservesOrderAndDerivesFields(t *testing.T) {
	got := New(nil).Transform(sampleRecords())
	require.Len(t, got, 5)

	for i, a := range got {
		assert.Equal(t, i+1, a.Row)
	}

	assert.Equal(t, core.VictimCounts{Male: 3}, got[0].Counts)
	assert.Equal(t, "March", got[0].MonthLabel)
	assert.True(t, got[0].HasMonth)
	assert.Equal(t, time.March, got[0].Month)

	assert.False(t, got[1].HasMonth)
	assert.Empty(t, got[1].MonthLabel)
	assert.Equal(t, 1, got[1].Counts.Male)
	assert.Equal(t, 1, got[1].Counts.Female)

	assert.Equal(t, time.September, got[2].Month)
	assert.Equal(t, 3, got[2].Counts.Unknown)

	assert.Equal(t, core.VictimCounts{}, got[3].Counts)
	assert.False(t, got[3].HasMonth)

	assert.Equal(t, "mar", got[4].MonthLabel)
	assert.Equal(t, time.March, got[4].Month)
}

func TestTransformMemoizesDescriptions(t *testing.T) {
	memo := cache.NewLRUCache[core.VictimCounts](16, 0)
	tr := New(memo)

	withMemo := tr.Transform(sampleRecords())
	without := New(nil).Transform(sampleRecords())
	assert.Equal(t, without, withMemo)

	hits, _ := memo.Stats()
	assert.Equal(t, 1, hits, "the repeated description should be served from the memo")
	assert.Equal(t, 3, memo.Size())
}
