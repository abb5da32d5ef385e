package provider

import (
	"testing"

	"stilrandevu/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKmSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(41.0082, 28.9784, 41.0082, 28.9784))
}

func TestDistanceKmSymmetric(t *testing.T) {
	// Istanbul to Ankara, both directions.
	d1 := DistanceKm(41.0082, 28.9784, 39.9334, 32.8597)
	d2 := DistanceKm(39.9334, 32.8597, 41.0082, 28.9784)

	assert.Equal(t, d1, d2)
	assert.InDelta(t, 350, d1, 10)
}

func TestAnnotateAndSortOrdersByDistance(t *testing.T) {
	providers := []models.Provider{
		{ID: "far", LocationGeo: models.NewGeoPoint(39.9334, 32.8597)},
		{ID: "near", LocationGeo: models.NewGeoPoint(41.01, 28.98)},
	}

	out := AnnotateAndSort(providers, 41.0082, 28.9784)
	require.Len(t, out, 2)

	assert.Equal(t, "near", out[0].ID)
	assert.Equal(t, "far", out[1].ID)
	assert.Less(t, out[0].DistanceKm, out[1].DistanceKm)
}

func TestAnnotateAndSortMissingCoordinatesSortLast(t *testing.T) {
	providers := []models.Provider{
		{ID: "unknown"},
		{ID: "located", LocationGeo: models.NewGeoPoint(41.01, 28.98)},
	}

	out := AnnotateAndSort(providers, 41.0082, 28.9784)
	require.Len(t, out, 2)

	assert.Equal(t, "located", out[0].ID)
	assert.Equal(t, "unknown", out[1].ID)
	assert.Equal(t, float64(UnknownDistanceKm), out[1].DistanceKm)
}

func TestAnnotateAndSortStableForUnknowns(t *testing.T) {
	providers := []models.Provider{
		{ID: "a"},
		{ID: "b"},
		{ID: "c"},
	}

	out := AnnotateAndSort(providers, 41.0, 29.0)
	require.Len(t, out, 3)

	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", out[1].ID)
	assert.Equal(t, "c", out[2].ID)
}
