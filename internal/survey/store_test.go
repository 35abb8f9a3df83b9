package survey

import (
	"testing"

	"github.com/AkshayV29/rssi-heatmap-tracker/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAdd(t *testing.T) {
	store := NewStore()

	point, err := store.Add(0, 0, -55)
	require.NoError(t, err)
	assert.Equal(t, -55, point.RSSI)
	assert.Equal(t, models.QualityExcellent, point.Quality)
	assert.False(t, point.Timestamp.IsZero())
	assert.Equal(t, 1, store.Count())
}

func TestStoreAddRejectsOutOfRange(t *testing.T) {
	store := NewStore()
	_, err := store.Add(1, 2, -55)
	require.NoError(t, err)

	_, err = store.Add(3, 4, -10)
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)

	// rejected point must leave the store unchanged and usable
	assert.Equal(t, 1, store.Count())
	_, err = store.Add(5, 6, -72)
	assert.NoError(t, err)
	assert.Equal(t, 2, store.Count())
}

func TestStoreQualityNeverDrifts(t *testing.T) {
	store := NewStore()
	for rssi := -110; rssi <= -30; rssi += 7 {
		_, err := store.Add(0, 0, rssi)
		require.NoError(t, err)
	}

	for _, p := range store.All() {
		assert.Equal(t, Classify(p.RSSI), p.Quality,
			"stored quality must match classify(rssi) for %d dBm", p.RSSI)
	}
}

func TestStoreClear(t *testing.T) {
	store := NewStore()
	store.Add(0, 0, -55)
	store.Add(1, 1, -65)

	store.Clear()
	assert.Equal(t, 0, store.Count())
	assert.Empty(t, store.All())

	// idempotent
	store.Clear()
	assert.Equal(t, 0, store.Count())
}

func TestStoreInsertionOrder(t *testing.T) {
	store := NewStore()
	readings := []int{-55, -88, -62, -75}
	for i, rssi := range readings {
		_, err := store.Add(float64(i), 0, rssi)
		require.NoError(t, err)
	}

	points := store.All()
	require.Len(t, points, len(readings))
	for i, p := range points {
		assert.Equal(t, readings[i], p.RSSI)
		assert.Equal(t, float64(i), p.X)
	}
}

func TestStoreReplace(t *testing.T) {
	store := NewStore()
	store.Add(0, 0, -55)

	err := store.Replace([]RawPoint{
		{X: 1, Y: 1, RSSI: -62},
		{X: 2, Y: 2, RSSI: -91},
	})
	require.NoError(t, err)

	points := store.All()
	require.Len(t, points, 2)
	assert.Equal(t, -62, points[0].RSSI)
	assert.Equal(t, models.QualityCritical, points[1].Quality)
}

func TestStoreReplaceIsAtomic(t *testing.T) {
	store := NewStore()
	store.Add(0, 0, -55)
	store.Add(1, 1, -65)

	err := store.Replace([]RawPoint{
		{X: 2, Y: 2, RSSI: -62},
		{X: 3, Y: 3, RSSI: -10}, // out of range
		{X: 4, Y: 4, RSSI: -70},
	})
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)

	// failed import must leave the prior points untouched
	points := store.All()
	require.Len(t, points, 2)
	assert.Equal(t, -55, points[0].RSSI)
	assert.Equal(t, -65, points[1].RSSI)
}

func TestStoreAllReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Add(0, 0, -55)

	points := store.All()
	points[0].RSSI = -99

	assert.Equal(t, -55, store.All()[0].RSSI)
}
