package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataset_IsIsolatedFromCallers(t *testing.T) {
	records := []Restaurant{{Name: "A", City: "X"}, {Name: "B", City: "Y"}}
	ds := NewDataset(records)

	records[0].Name = "changed"
	assert.Equal(t, "A", ds.Records()[0].Name)

	copied := ds.Records()
	copied[1].City = "changed"
	assert.Equal(t, "Y", ds.Records()[1].City)

	for _, r := range ds.All() {
		r.Name = "changed"
	}
	assert.Equal(t, "A", ds.Records()[0].Name)
}

func TestDataset_Cities(t *testing.T) {
	ds := NewDataset([]Restaurant{{City: "Agra"}, {City: "New Delhi"}, {City: "Agra"}, {City: "agra"}})

	assert.Equal(t, []string{"Agra", "New Delhi", "agra"}, ds.Cities())
	assert.Equal(t, 4, ds.Len())
}

func TestDataset_Nil(t *testing.T) {
	var ds *Dataset

	assert.Equal(t, 0, ds.Len())
	assert.Empty(t, ds.Cities())
	assert.Nil(t, ds.Records())
}
