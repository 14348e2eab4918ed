package routes

import (
	"encoding/csv"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rm-hull/restaurant-insights-api/internal"
	"github.com/rm-hull/restaurant-insights-api/internal/models"
	"github.com/rm-hull/restaurant-insights-api/internal/stats"
)

var topTableColumns = []models.TableColumn{
	{Name: models.ColRestaurantName, Id: "name"},
	{Name: models.ColCity, Id: "city"},
	{Name: models.ColAggregateRating, Id: "aggregate_rating"},
	{Name: models.ColVotes, Id: "votes"},
}

// Dashboard serves every derived view for the optional ?city= filter. A city
// parameter that is present but empty is still a filter (and matches nothing
// unless a record has an empty city).
func Dashboard(provider internal.DatasetProvider) func(c *gin.Context) {
	return func(c *gin.Context) {
		ds, ok := dataset(c, provider)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, derive(ds, cityFilter(c)))
	}
}

func Cities(provider internal.DatasetProvider) func(c *gin.Context) {
	return func(c *gin.Context) {
		ds, ok := dataset(c, provider)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, models.CitiesResponse{Cities: ds.Cities()})
	}
}

// Top serves the top-10 table together with its column definitions.
func Top(provider internal.DatasetProvider) func(c *gin.Context) {
	return func(c *gin.Context) {
		ds, ok := dataset(c, provider)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, models.TopTableResponse{
			Columns: topTableColumns,
			Rows:    derive(ds, cityFilter(c)).Top10Ranked,
		})
	}
}

func cityFilter(c *gin.Context) *string {
	if city, ok := c.GetQuery("city"); ok {
		return &city
	}
	return nil
}

func dataset(c *gin.Context, provider internal.DatasetProvider) (*models.Dataset, bool) {
	ds, err := provider.Dataset()
	if err != nil {
		log.Printf("error while loading restaurant dataset: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred"})
		return nil, false
	}
	return ds, true
}

func derive(ds *models.Dataset, city *string) *models.DashboardStatistics {
	start := time.Now()
	result := stats.Derive(ds, city)
	deriveDuration.Observe(time.Since(start).Seconds())
	if city != nil && result.TotalRestaurants == 0 {
		emptySelections.Inc()
	}
	return result
}

// Export streams the selected restaurants as CSV using the dataset header.
func Export(provider internal.DatasetProvider) func(c *gin.Context) {
	return func(c *gin.Context) {
		ds, ok := dataset(c, provider)
		if !ok {
			return
		}

		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", `attachment; filename="restaurants.csv"`)
		c.Status(http.StatusOK)

		w := csv.NewWriter(c.Writer)
		if err := w.Write(models.CSVHeaders); err != nil {
			log.Printf("failed to write CSV header: %v", err)
			return
		}
		for _, r := range stats.Select(ds, cityFilter(c)) {
			if err := w.Write(r.ToCSV()); err != nil {
				log.Printf("failed to write CSV row: %v", err)
				return
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			log.Printf("failed to flush CSV: %v", err)
		}
	}
}
