package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "Restaurant Name,City,Cuisines,Latitude,Longitude,Price range,Aggregate rating,Votes,Has Online delivery,Has Table booking"

func TestLoadDataset_DropsIncompleteRows(t *testing.T) {
	csv := strings.Join([]string{
		header,
		"Complete,X,Italian,1.0,2.0,1,4.0,10,Yes,No",
		"No City,,Italian,1.0,2.0,1,4.0,10,Yes,No",
		"No Cuisines,X,,1.0,2.0,1,4.0,10,Yes,No",
		"No Latitude,X,Italian,,2.0,1,4.0,10,Yes,No",
		"No Longitude,X,Italian,1.0,,1,4.0,10,Yes,No",
		"NaN Longitude,X,Italian,1.0,NaN,1,4.0,10,Yes,No",
	}, "\n")

	ds, summary, err := LoadDataset(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, LoadSummary{Read: 6, Kept: 1, Dropped: 5}, summary)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "Complete", ds.Records()[0].Name)
}

func TestLoadDataset_ColumnOrderAndBOM(t *testing.T) {
	csv := "\ufeffVotes,City,Restaurant Name,Longitude,Latitude,Cuisines,Aggregate rating,Price range,Extra\n" +
		"42,Agra,Karim's,78.0,27.1,\"Mughlai, North Indian\",3.9,2,ignored\n"

	ds, _, err := LoadDataset(strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())

	r := ds.Records()[0]
	assert.Equal(t, "Karim's", r.Name)
	assert.Equal(t, "Agra", r.City)
	assert.Equal(t, 42, r.Votes)
	assert.Equal(t, 27.1, r.Latitude)
	assert.Equal(t, 78.0, r.Longitude)
	assert.Equal(t, []string{"Mughlai", "North Indian"}, r.CuisineList())
}

func TestLoadDataset_MalformedNumberFails(t *testing.T) {
	csv := strings.Join([]string{
		header,
		"Complete,X,Italian,1.0,2.0,1,4.0,10,Yes,No",
		"Broken,X,Italian,1.0,2.0,1,four,10,Yes,No",
	}, "\n")

	_, _, err := LoadDataset(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "Aggregate rating")
}

func TestLoadDataset_EmptyInput(t *testing.T) {
	ds, summary, err := LoadDataset(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
	assert.Equal(t, LoadSummary{}, summary)
}

func TestLoadDataset_NaNRatingFails(t *testing.T) {
	csv := strings.Join([]string{
		header,
		"A,X,Italian,1.0,2.0,1,4.0,10,Yes,No",
		"B,X,Italian,1.0,2.0,1,NaN,10,Yes,No",
	}, "\n")

	_, _, err := LoadDataset(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "Aggregate rating")
}

func TestLoadDataset_EmptyRatingFails(t *testing.T) {
	csv := strings.Join([]string{
		header,
		"A,X,Italian,1.0,2.0,1,4.0,10,Yes,No",
		"B,X,Italian,1.0,2.0,1,,10,Yes,No",
	}, "\n")

	_, _, err := LoadDataset(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "Aggregate rating")
}

func TestLoadDataset_IncompleteRowWithoutRatingIsDropped(t *testing.T) {
	csv := strings.Join([]string{
		header,
		"A,X,Italian,1.0,2.0,1,4.0,10,Yes,No",
		"B,,Italian,1.0,2.0,1,,10,Yes,No",
	}, "\n")

	ds, summary, err := LoadDataset(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, LoadSummary{Read: 2, Kept: 1, Dropped: 1}, summary)
	assert.Equal(t, 1, ds.Len())
}
