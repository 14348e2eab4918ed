package cmd

import (
	"log"

	"github.com/rm-hull/restaurant-insights-api/internal"
)

func Import(dbPath, csvPath string) error {

	repo, err := bootstrap(dbPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Printf("failed to close repository: %v", err)
		}
	}()

	summary, err := internal.Import(repo, csvPath)
	if err != nil {
		return err
	}
	log.Printf("read %d rows, kept %d, dropped %d with missing cuisines, city or coordinates", summary.Read, summary.Kept, summary.Dropped)

	return nil
}
