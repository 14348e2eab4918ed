package models

import (
	"iter"
	"slices"
)

// Dataset is an immutable, ordered collection of restaurant records. Records
// are copied on the way in and handed out by value, so nothing holding a
// Dataset can change what another holder sees.
type Dataset struct {
	records []Restaurant
}

func NewDataset(records []Restaurant) *Dataset {
	return &Dataset{records: slices.Clone(records)}
}

func (ds *Dataset) Len() int {
	if ds == nil {
		return 0
	}
	return len(ds.records)
}

// All yields each record in load order.
func (ds *Dataset) All() iter.Seq2[int, Restaurant] {
	return func(yield func(int, Restaurant) bool) {
		if ds == nil {
			return
		}
		for i, r := range ds.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Records returns a copy of the underlying records.
func (ds *Dataset) Records() []Restaurant {
	if ds == nil {
		return nil
	}
	return slices.Clone(ds.records)
}

// Cities lists the distinct city names in the order they first appear.
func (ds *Dataset) Cities() []string {
	cities := make([]string, 0)
	seen := make(map[string]struct{})
	for _, r := range ds.All() {
		if _, ok := seen[r.City]; ok {
			continue
		}
		seen[r.City] = struct{}{}
		cities = append(cities, r.City)
	}
	return cities
}
