package survey

import (
	"testing"

	"github.com/AkshayV29/rssi-heatmap-tracker/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, 0, stats.TotalPoints)
	assert.Equal(t, 0.0, stats.AvgRSSI)
	assert.Equal(t, 0.0, stats.CoveragePercent)
	assert.Equal(t, 0, stats.AGVSuitable)
	assert.False(t, stats.CoveragePercent != stats.CoveragePercent, "coverage must never be NaN")
}

func TestComputeStatsSinglePoint(t *testing.T) {
	store := NewStore()
	_, err := store.Add(0, 0, -55)
	require.NoError(t, err)

	stats := ComputeStats(store.All())
	assert.Equal(t, 1, stats.TotalPoints)
	assert.Equal(t, -55.0, stats.AvgRSSI)
	assert.Equal(t, -55, stats.MinRSSI)
	assert.Equal(t, -55, stats.MaxRSSI)
	assert.Equal(t, 1, stats.Excellent)
	assert.Equal(t, 100.0, stats.CoveragePercent)
}

func TestComputeStatsBucketSums(t *testing.T) {
	store := NewStore()
	for rssi := -115; rssi <= -25; rssi += 3 {
		_, err := store.Add(0, 0, rssi)
		require.NoError(t, err)
	}

	stats := ComputeStats(store.All())
	sum := stats.Excellent + stats.Good + stats.Fair + stats.Poor + stats.Critical
	assert.Equal(t, stats.TotalPoints, sum, "quality buckets must sum to the total")

	// the -70 dBm AGV floor coincides exactly with the Good/Fair boundary
	assert.Equal(t, stats.Excellent+stats.Good, stats.AGVSuitable)
}

func TestComputeStatsDemoDataset(t *testing.T) {
	store := NewStore()
	loaded, err := LoadDemo(store)
	require.NoError(t, err)
	assert.Equal(t, 12, loaded)

	stats := ComputeStats(store.All())
	assert.Equal(t, 12, stats.TotalPoints)
	assert.Equal(t, 2, stats.Excellent)
	assert.Equal(t, 4, stats.Good)
	assert.Equal(t, 3, stats.Fair)
	assert.Equal(t, 3, stats.Poor)
	assert.Equal(t, 0, stats.Critical)
	assert.Equal(t, 6, stats.AGVSuitable)
	assert.Equal(t, 50.0, stats.CoveragePercent)
	assert.Equal(t, -88, stats.MinRSSI)
	assert.Equal(t, -55, stats.MaxRSSI)
	assert.InDelta(t, -71.5, stats.AvgRSSI, 1e-9)

	assert.Equal(t, models.VerdictNotReady, ReadinessVerdict(stats.CoveragePercent))
}

func TestReadinessVerdict(t *testing.T) {
	tests := []struct {
		name     string
		coverage float64
		want     models.Verdict
	}{
		{"full coverage", 100, models.VerdictReady},
		{"ready boundary", 95.0, models.VerdictReady},
		{"just below ready", 94.9, models.VerdictNeedsImprovement},
		{"improvement boundary", 80.0, models.VerdictNeedsImprovement},
		{"just below improvement", 79.9, models.VerdictNotReady},
		{"no coverage", 0, models.VerdictNotReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadinessVerdict(tt.coverage))
		})
	}
}
