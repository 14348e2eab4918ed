package internal

import (
	"testing"
	"time"

	"github.com/rm-hull/restaurant-insights-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryProvider(t *testing.T) {
	repo := setupTestDB(t)
	_, err := repo.ReplaceAll("test", LoadSummary{}, []models.Restaurant{{Name: "A", City: "X", Cuisines: "Thai", Latitude: 1, Longitude: 2}})
	require.NoError(t, err)

	provider := NewRepositoryProvider(repo, time.Hour)

	first, err := provider.Dataset()
	require.NoError(t, err)
	assert.Equal(t, 1, first.Len())

	_, err = repo.ReplaceAll("test", LoadSummary{}, []models.Restaurant{
		{Name: "A", City: "X", Cuisines: "Thai", Latitude: 1, Longitude: 2},
		{Name: "B", City: "Y", Cuisines: "Thai", Latitude: 1, Longitude: 2},
	})
	require.NoError(t, err)

	cached, err := provider.Dataset()
	require.NoError(t, err)
	assert.Same(t, first, cached)

	provider.Invalidate()

	reloaded, err := provider.Dataset()
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Len())
	assert.Equal(t, 1, first.Len())
}

func TestStaticProvider(t *testing.T) {
	ds := models.NewDataset(nil)
	provider := StaticProvider(ds)
	provider.Invalidate()

	got, err := provider.Dataset()
	require.NoError(t, err)
	assert.Same(t, ds, got)
}
