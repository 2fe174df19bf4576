package harness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaselineRoundTrip(t *testing.T) {
	dir := t.TempDir()
	results := sampleResults()

	path, err := SaveBaseline(dir, "main", results)
	require.NoError(t, err)
	assert.FileExists(t, path)

	base, err := LoadBaseline(dir, "main")
	require.NoError(t, err)
	assert.Equal(t, "main", base.Name)
	require.Len(t, base.Entries, 2)

	entry, ok := base.Entries["clone/string-clone"]
	require.True(t, ok)
	assert.InDelta(t, float64(40*time.Microsecond), entry.MeanNs, 1e-9)
	assert.InDelta(t, 25e9, entry.ThroughputBps, 1e-3)
}

func TestSaveBaselineRejectsBadNames(t *testing.T) {
	dir := t.TempDir()

	_, err := SaveBaseline(dir, "", nil)
	assert.Error(t, err)

	_, err = SaveBaseline(dir, "../escape", nil)
	assert.Error(t, err)
}

func TestLoadBaselineMissing(t *testing.T) {
	_, err := LoadBaseline(t.TempDir(), "nope")
	assert.Error(t, err)
}

func TestCompareFlagsRegressions(t *testing.T) {
	base := &Baseline{
		Name: "main",
		Entries: map[string]BaselineEntry{
			"clone/string-clone": {MeanNs: 100},
			"clone/handle-clone": {MeanNs: 10},
		},
	}
	results := []Result{
		{Group: "clone", Variant: "string-clone", Mean: 150 * time.Nanosecond},
		{Group: "clone", Variant: "handle-clone", Mean: 10 * time.Nanosecond},
		{Group: "clone", Variant: "unknown", Mean: time.Second},
	}

	regressions := Compare(results, base, 0.10)
	require.Len(t, regressions, 1)
	assert.Equal(t, "clone/string-clone", regressions[0].Key)
	assert.InDelta(t, 1.5, regressions[0].Ratio, 1e-9)
	assert.Equal(t, 100*time.Nanosecond, regressions[0].BaselineMean)
	assert.Equal(t, 150*time.Nanosecond, regressions[0].CurrentMean)
}

func TestCompareWithinTolerance(t *testing.T) {
	base := &Baseline{
		Name:    "main",
		Entries: map[string]BaselineEntry{"clone/string-clone": {MeanNs: 100}},
	}
	results := []Result{
		{Group: "clone", Variant: "string-clone", Mean: 105 * time.Nanosecond},
	}
	assert.Empty(t, Compare(results, base, 0.10))
}
