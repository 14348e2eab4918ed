package internal

import (
	"io"
	"log"

	"github.com/cockroachdb/errors"
	"github.com/rm-hull/restaurant-insights-api/internal/models"
)

type LoadSummary struct {
	Read    int
	Kept    int
	Dropped int
}

// LoadDataset reads restaurant rows from a CSV with a header line. Rows that
// miss cuisines, city or coordinates are dropped and counted; any other
// problem with a row aborts the load.
func LoadDataset(reader io.Reader) (*models.Dataset, LoadSummary, error) {
	var summary LoadSummary
	records := make([]models.Restaurant, 0, 1024)

	for result := range ParseCSV(reader, true, models.FromCSV) {
		if result.Error != nil {
			if errors.Is(result.Error, models.ErrIncompleteRecord) {
				summary.Read++
				summary.Dropped++
				continue
			}
			return nil, summary, errors.Wrapf(result.Error, "line %d", result.Line)
		}
		summary.Read++
		summary.Kept++
		records = append(records, *result.Value)
	}

	return models.NewDataset(records), summary, nil
}

// LoadDatasetFrom loads a dataset from a file path or http(s) URL.
func LoadDatasetFrom(location string) (*models.Dataset, LoadSummary, error) {
	body, err := OpenSource(location)
	if err != nil {
		return nil, LoadSummary{}, err
	}
	defer func() {
		if err := body.Close(); err != nil {
			log.Printf("failed to close %s: %v", location, err)
		}
	}()

	ds, summary, err := LoadDataset(body)
	if err != nil {
		return nil, summary, errors.Wrapf(err, "failed to load %s", location)
	}
	log.Printf("loaded %s: read %d rows, kept %d, dropped %d incomplete", location, summary.Read, summary.Kept, summary.Dropped)
	return ds, summary, nil
}
