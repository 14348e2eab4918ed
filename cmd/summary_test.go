package cmd

import (
	"bytes"
	"testing"

	"github.com/rm-hull/restaurant-insights-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_Sample(t *testing.T) {
	var buf bytes.Buffer
	city := "New Delhi"

	err := Summary(&buf, "", &city, true)
	require.NoError(t, err)

	var stats models.DashboardStatistics
	require.NoError(t, json.Unmarshal(buf.Bytes(), &stats))
	assert.Equal(t, 5, stats.TotalRestaurants)
	assert.Equal(t, 6, stats.TotalCities)
	assert.Equal(t, "Indian Accent", stats.Top10Ranked[0].Name)
	assert.Equal(t, "North Indian", stats.TopCuisines[0].Cuisine)
	assert.Equal(t, 3, stats.TopCuisines[0].Count)
}

func TestSummary_Database(t *testing.T) {
	t.Chdir(t.TempDir())

	var buf bytes.Buffer
	err := Summary(&buf, "restaurants.db", nil, false)
	require.NoError(t, err)

	var stats models.DashboardStatistics
	require.NoError(t, json.Unmarshal(buf.Bytes(), &stats))
	assert.Equal(t, 0, stats.TotalRestaurants)
	assert.Nil(t, stats.AvgRating)
}
