package cmd

import (
	"fmt"
	"io"
	"log"

	jsoniter "github.com/json-iterator/go"

	"github.com/rm-hull/restaurant-insights-api/internal/models"
	"github.com/rm-hull/restaurant-insights-api/internal/sample"
	"github.com/rm-hull/restaurant-insights-api/internal/stats"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Summary writes the dashboard views for city as indented JSON. With
// useSample the embedded demo dataset is used instead of the database.
func Summary(out io.Writer, dbPath string, city *string, useSample bool) error {
	ds, err := summaryDataset(dbPath, useSample)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(stats.Derive(ds, city)); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return nil
}

func summaryDataset(dbPath string, useSample bool) (*models.Dataset, error) {
	if useSample {
		ds, _, err := sample.Dataset()
		return ds, err
	}

	repo, err := bootstrap(dbPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Printf("failed to close repository: %v", err)
		}
	}()

	records, err := repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read restaurants: %w", err)
	}
	return models.NewDataset(records), nil
}
