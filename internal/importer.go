package internal

import (
	"fmt"
	"log"
)

// Import loads the CSV at location, drops incomplete rows and replaces the
// stored dataset with what remains. The import is recorded in the same
// transaction as the replacement.
func Import(repo RestaurantRepository, location string) (LoadSummary, error) {
	ds, summary, err := LoadDatasetFrom(location)
	if err != nil {
		return summary, err
	}

	n, err := repo.ReplaceAll(location, summary, ds.Records())
	if err != nil {
		return summary, fmt.Errorf("failed to store restaurants: %w", err)
	}

	log.Printf("Imported %d restaurants from %s (%d dropped)", n, location, summary.Dropped)
	return summary, nil
}
