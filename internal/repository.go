package internal

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log"
	"time"

	"github.com/rm-hull/restaurant-insights-api/internal/models"
	"github.com/tavsec/gin-healthcheck/checks"
)

//go:embed sql/insert_restaurant.sql
var insertRestaurantSQL string

//go:embed sql/select_restaurants.sql
var selectRestaurantsSQL string

//go:embed sql/insert_import.sql
var insertImportSQL string

//go:embed sql/last_import.sql
var lastImportSQL string

type RestaurantRepository interface {
	ReplaceAll(source string, summary LoadSummary, batch []models.Restaurant) (int, error)
	FindAll() ([]models.Restaurant, error)
	LastImported() (*time.Time, error)
	Check() checks.Check
	Close() error
}

type sqliteRepository struct {
	db *sql.DB
}

func NewRestaurantRepository(db *sql.DB) RestaurantRepository {
	return &sqliteRepository{
		db: db,
	}
}

// ReplaceAll swaps the stored dataset for batch and records the import in a
// single transaction, so readers see either the old snapshot or the new one
// together with its import history row.
func (repo *sqliteRepository) ReplaceAll(source string, summary LoadSummary, batch []models.Restaurant) (int, error) {
	tx, err := repo.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Printf("error rolling back transaction: %v", rbErr)
			}
		}
	}()

	if _, err = tx.Exec("DELETE FROM restaurants"); err != nil {
		return 0, fmt.Errorf("failed to clear restaurants: %w", err)
	}

	stmt, err := tx.Prepare(insertRestaurantSQL)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			log.Printf("failed to close statement: %v", err)
		}
	}()

	for _, r := range batch {
		_, err = stmt.Exec(r.ToTuple()...)
		if err != nil {
			return 0, fmt.Errorf("failed to execute individual insert: %w", err)
		}
	}

	if _, err = tx.Exec(insertImportSQL, source, summary.Read, summary.Kept, summary.Dropped, time.Now().UTC()); err != nil {
		return 0, fmt.Errorf("failed to record import: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return len(batch), nil
}

func (repo *sqliteRepository) FindAll() ([]models.Restaurant, error) {

	rows, err := repo.db.Query(selectRestaurantsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to execute select query: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	results := make([]models.Restaurant, 0, 1024)
	for rows.Next() {
		var r models.Restaurant
		if err := rows.Scan(
			&r.RestaurantId, &r.Name, &r.CountryCode, &r.City, &r.Address, &r.Locality, &r.LocalityVerbose,
			&r.Longitude, &r.Latitude, &r.Cuisines, &r.AverageCostForTwo, &r.Currency,
			&r.HasTableBooking, &r.HasOnlineDelivery, &r.IsDeliveringNow, &r.SwitchToOrderMenu,
			&r.PriceRange, &r.AggregateRating, &r.RatingColor, &r.RatingText, &r.Votes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over rows: %w", err)
	}

	return results, nil
}

// LastImported returns when the dataset was last replaced, or nil if it
// never has been.
func (repo *sqliteRepository) LastImported() (*time.Time, error) {
	var importedAt time.Time
	err := repo.db.QueryRow(lastImportSQL).Scan(&importedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query last import: %w", err)
	}
	return &importedAt, nil
}

func (repo *sqliteRepository) Check() checks.Check {
	return checks.SqlCheck{Sql: repo.db}
}

func (repo *sqliteRepository) Close() error {
	return repo.db.Close()
}
