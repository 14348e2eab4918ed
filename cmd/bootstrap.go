package cmd

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/rm-hull/godx"

	"github.com/rm-hull/restaurant-insights-api/internal"
)

// bootstrap initialises the repository shared by the API server, import and
// summary commands, applying any pending migrations first.
func bootstrap(dbPath string) (internal.RestaurantRepository, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	godx.GitVersion()
	godx.EnvironmentVars()
	godx.UserInfo()

	db, err := internal.Connect(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := internal.Migrate(dbPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate SQL: %w", err)
	}

	return internal.NewRestaurantRepository(db), nil
}
