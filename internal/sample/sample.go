// Package sample bundles a small restaurant dataset used for demos and tests.
package sample

import (
	_ "embed"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rm-hull/restaurant-insights-api/internal"
	"github.com/rm-hull/restaurant-insights-api/internal/models"
)

//go:embed restaurants.csv
var restaurantsCSV string

// CSV returns the raw embedded CSV, incomplete rows included.
func CSV() string {
	return restaurantsCSV
}

func Dataset() (*models.Dataset, internal.LoadSummary, error) {
	ds, summary, err := internal.LoadDataset(strings.NewReader(restaurantsCSV))
	if err != nil {
		return nil, summary, errors.Wrap(err, "failed to load sample restaurants")
	}
	return ds, summary, nil
}
