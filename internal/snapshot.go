package internal

import (
	"fmt"
	"time"

	"github.com/kofalt/go-memoize"
	"github.com/rm-hull/restaurant-insights-api/internal/models"
)

const snapshotKey = "restaurants"

type DatasetProvider interface {
	Dataset() (*models.Dataset, error)
	Invalidate()
}

type repositoryProvider struct {
	repo  RestaurantRepository
	cache *memoize.Memoizer
}

// NewRepositoryProvider serves the stored dataset, reloading it from the
// repository at most once per ttl. Each reload produces a fresh immutable
// Dataset; handles already given out are unaffected.
func NewRepositoryProvider(repo RestaurantRepository, ttl time.Duration) DatasetProvider {
	return &repositoryProvider{
		repo:  repo,
		cache: memoize.NewMemoizer(ttl, 2*ttl),
	}
}

func (p *repositoryProvider) Dataset() (*models.Dataset, error) {
	result, err, _ := p.cache.Memoize(snapshotKey, func() (any, error) {
		records, err := p.repo.FindAll()
		if err != nil {
			return nil, err
		}
		return models.NewDataset(records), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return result.(*models.Dataset), nil
}

func (p *repositoryProvider) Invalidate() {
	p.cache.Storage.Delete(snapshotKey)
}

type staticProvider struct {
	ds *models.Dataset
}

// StaticProvider always serves the same dataset handle.
func StaticProvider(ds *models.Dataset) DatasetProvider {
	return &staticProvider{ds: ds}
}

func (p *staticProvider) Dataset() (*models.Dataset, error) {
	return p.ds, nil
}

func (p *staticProvider) Invalidate() {}
