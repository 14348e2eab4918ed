package stats

import (
	"math"
	"slices"
	"strings"

	"github.com/rm-hull/restaurant-insights-api/internal/models"
)

const (
	TopCuisinesLimit = 3
	TopRankedLimit   = 10
	PriceBins        = 4
	RatingBins       = 20
)

// Derive computes every dashboard view for the records of ds matching city.
// A nil city selects the whole dataset; otherwise the match is exact and
// case-sensitive. Derive never modifies ds and holds no state between calls.
func Derive(ds *models.Dataset, city *string) *models.DashboardStatistics {
	subset := Select(ds, city)

	stats := &models.DashboardStatistics{
		City:                 city,
		TotalCities:          distinctCities(ds),
		TotalRestaurants:     len(subset),
		TopCuisines:          topCuisines(subset, TopCuisinesLimit),
		PriceDistribution:    histogram(project(subset, func(r models.Restaurant) float64 { return float64(r.PriceRange) }), PriceBins),
		VotesVsRating:        make([]models.VotesRatingPoint, 0, len(subset)),
		RatingCategory:       make([]models.MapPoint, 0, len(subset)),
		DeliveryDistribution: countBy(subset, func(r models.Restaurant) string { return r.HasOnlineDelivery }),
		BookingDistribution:  countBy(subset, func(r models.Restaurant) string { return r.HasTableBooking }),
		RatingHistogram:      histogram(project(subset, func(r models.Restaurant) float64 { return r.AggregateRating }), RatingBins),
		Top10Ranked:          TopRanked(subset, TopRankedLimit),
	}

	if len(subset) > 0 {
		ratingSum := 0.0
		var votesSum int64
		for _, r := range subset {
			ratingSum += r.AggregateRating
			votesSum += int64(r.Votes)
		}
		avgRating := math.Round(ratingSum/float64(len(subset))*100) / 100
		avgVotes := int(votesSum / int64(len(subset)))
		stats.AvgRating = &avgRating
		stats.AvgVotes = &avgVotes
	}

	for _, r := range subset {
		stats.VotesVsRating = append(stats.VotesVsRating, models.VotesRatingPoint{
			Votes:           r.Votes,
			AggregateRating: r.AggregateRating,
			PriceRange:      r.PriceRange,
			Name:            r.Name,
		})
		stats.RatingCategory = append(stats.RatingCategory, models.MapPoint{
			Name:            r.Name,
			City:            r.City,
			Cuisines:        r.Cuisines,
			Latitude:        r.Latitude,
			Longitude:       r.Longitude,
			AggregateRating: r.AggregateRating,
			RatingCategory:  RatingCategory(r),
		})
	}

	return stats
}

// Select returns copies of the records matching city, in dataset order.
func Select(ds *models.Dataset, city *string) []models.Restaurant {
	subset := make([]models.Restaurant, 0, ds.Len())
	for _, r := range ds.All() {
		if city == nil || r.City == *city {
			subset = append(subset, r)
		}
	}
	return subset
}

// RatingCategory labels a record for map colouring. The comparison against
// 5.0 is exact.
func RatingCategory(r models.Restaurant) string {
	if r.IsFiveStar() {
		return models.RatingCategoryFiveStar
	}
	return models.RatingCategoryOther
}

// TopRanked stably sorts records by rating, highest first, and keeps the
// first limit of them. Names of 5-star restaurants get the star marker.
func TopRanked(records []models.Restaurant, limit int) []models.RankedRestaurant {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b models.Restaurant) int {
		switch {
		case a.AggregateRating > b.AggregateRating:
			return -1
		case a.AggregateRating < b.AggregateRating:
			return 1
		default:
			return 0
		}
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	ranked := make([]models.RankedRestaurant, 0, len(sorted))
	for _, r := range sorted {
		name := r.Name
		if r.IsFiveStar() {
			name = models.StarMarker + name
		}
		ranked = append(ranked, models.RankedRestaurant{
			Name:            name,
			City:            r.City,
			AggregateRating: r.AggregateRating,
			Votes:           r.Votes,
		})
	}
	return ranked
}

func distinctCities(ds *models.Dataset) int {
	seen := make(map[string]struct{})
	for _, r := range ds.All() {
		seen[r.City] = struct{}{}
	}
	return len(seen)
}

// topCuisines counts every cuisine token across records and returns the most
// frequent ones. Equal counts keep the order in which cuisines were first seen.
func topCuisines(records []models.Restaurant, limit int) []models.CuisineCount {
	counts := make([]models.CuisineCount, 0)
	index := make(map[string]int)

	for _, r := range records {
		for _, cuisine := range r.CuisineList() {
			if strings.TrimSpace(cuisine) == "" {
				continue
			}
			if i, ok := index[cuisine]; ok {
				counts[i].Count++
				continue
			}
			index[cuisine] = len(counts)
			counts = append(counts, models.CuisineCount{Cuisine: cuisine, Count: 1})
		}
	}

	slices.SortStableFunc(counts, func(a, b models.CuisineCount) int {
		return b.Count - a.Count
	})

	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

func countBy(records []models.Restaurant, key func(models.Restaurant) string) []models.Slice {
	dist := make([]models.Slice, 0)
	index := make(map[string]int)

	for _, r := range records {
		k := key(r)
		if i, ok := index[k]; ok {
			dist[i].Count++
			continue
		}
		index[k] = len(dist)
		dist = append(dist, models.Slice{Label: k, Count: 1})
	}
	return dist
}

func project(records []models.Restaurant, value func(models.Restaurant) float64) []float64 {
	values := make([]float64, 0, len(records))
	for _, r := range records {
		values = append(values, value(r))
	}
	return values
}
