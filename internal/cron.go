package internal

import (
	"log"

	"github.com/robfig/cron/v3"
)

const CRON_SCHEDULE_IMPORT = "0 */6 * * *" // Every 6 hours

// StartCron re-imports the CSV at location on schedule and invalidates the
// provider so the next request sees the new snapshot.
func StartCron(repo RestaurantRepository, provider DatasetProvider, location, schedule string) (*cron.Cron, error) {
	if schedule == "" {
		schedule = CRON_SCHEDULE_IMPORT
	}

	c := cron.New()

	log.Printf("Starting CRON job to re-import restaurants from %s (%s)", location, schedule)

	if _, err := c.AddFunc(schedule, func() {
		if _, err := Import(repo, location); err != nil {
			log.Printf("Error re-importing restaurants: %v\n", err)
			return
		}
		provider.Invalidate()
	}); err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
