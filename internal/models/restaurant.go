package models

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrIncompleteRecord marks a CSV row that lacks one of the fields every
// record in a Dataset must carry (cuisines, city, latitude, longitude).
var ErrIncompleteRecord = errors.New("incomplete restaurant record")

const (
	ColRestaurantId      = "Restaurant ID"
	ColRestaurantName    = "Restaurant Name"
	ColCountryCode       = "Country Code"
	ColCity              = "City"
	ColAddress           = "Address"
	ColLocality          = "Locality"
	ColLocalityVerbose   = "Locality Verbose"
	ColLongitude         = "Longitude"
	ColLatitude          = "Latitude"
	ColCuisines          = "Cuisines"
	ColAverageCostForTwo = "Average Cost for two"
	ColCurrency          = "Currency"
	ColHasTableBooking   = "Has Table booking"
	ColHasOnlineDelivery = "Has Online delivery"
	ColIsDeliveringNow   = "Is delivering now"
	ColSwitchToOrderMenu = "Switch to order menu"
	ColPriceRange        = "Price range"
	ColAggregateRating   = "Aggregate rating"
	ColRatingColor       = "Rating color"
	ColRatingText        = "Rating text"
	ColVotes             = "Votes"
)

// CSVHeaders is the column order written by ToCSV.
var CSVHeaders = []string{
	ColRestaurantId, ColRestaurantName, ColCountryCode, ColCity, ColAddress,
	ColLocality, ColLocalityVerbose, ColLongitude, ColLatitude, ColCuisines,
	ColAverageCostForTwo, ColCurrency, ColHasTableBooking, ColHasOnlineDelivery,
	ColIsDeliveringNow, ColSwitchToOrderMenu, ColPriceRange, ColAggregateRating,
	ColRatingColor, ColRatingText, ColVotes,
}

type Restaurant struct {
	RestaurantId      string  `json:"restaurant_id"`
	Name              string  `json:"name"`
	CountryCode       string  `json:"country_code,omitempty"`
	City              string  `json:"city"`
	Address           string  `json:"address,omitempty"`
	Locality          string  `json:"locality,omitempty"`
	LocalityVerbose   string  `json:"locality_verbose,omitempty"`
	Longitude         float64 `json:"longitude"`
	Latitude          float64 `json:"latitude"`
	Cuisines          string  `json:"cuisines"`
	AverageCostForTwo string  `json:"average_cost_for_two,omitempty"`
	Currency          string  `json:"currency,omitempty"`
	HasTableBooking   string  `json:"has_table_booking"`
	HasOnlineDelivery string  `json:"has_online_delivery"`
	IsDeliveringNow   string  `json:"is_delivering_now,omitempty"`
	SwitchToOrderMenu string  `json:"switch_to_order_menu,omitempty"`
	PriceRange        int     `json:"price_range"`
	AggregateRating   float64 `json:"aggregate_rating"`
	RatingColor       string  `json:"rating_color,omitempty"`
	RatingText        string  `json:"rating_text,omitempty"`
	Votes             int     `json:"votes"`
}

// CuisineList splits the free-text cuisines field into its individual names.
func (r *Restaurant) CuisineList() []string {
	return strings.Split(r.Cuisines, ", ")
}

// IsFiveStar reports whether the rating is exactly 5.0.
func (r *Restaurant) IsFiveStar() bool {
	return r.AggregateRating == 5.0
}

func (r *Restaurant) ToTuple() []any {
	return []any{
		r.RestaurantId,
		r.Name,
		r.CountryCode,
		r.City,
		r.Address,
		r.Locality,
		r.LocalityVerbose,
		r.Longitude,
		r.Latitude,
		r.Cuisines,
		r.AverageCostForTwo,
		r.Currency,
		r.HasTableBooking,
		r.HasOnlineDelivery,
		r.IsDeliveringNow,
		r.SwitchToOrderMenu,
		r.PriceRange,
		r.AggregateRating,
		r.RatingColor,
		r.RatingText,
		r.Votes,
	}
}

func (r *Restaurant) ToCSV() []string {
	return []string{
		r.RestaurantId,
		r.Name,
		r.CountryCode,
		r.City,
		r.Address,
		r.Locality,
		r.LocalityVerbose,
		strconv.FormatFloat(r.Longitude, 'f', -1, 64),
		strconv.FormatFloat(r.Latitude, 'f', -1, 64),
		r.Cuisines,
		r.AverageCostForTwo,
		r.Currency,
		r.HasTableBooking,
		r.HasOnlineDelivery,
		r.IsDeliveringNow,
		r.SwitchToOrderMenu,
		strconv.Itoa(r.PriceRange),
		strconv.FormatFloat(r.AggregateRating, 'f', -1, 64),
		r.RatingColor,
		r.RatingText,
		strconv.Itoa(r.Votes),
	}
}

// FromCSV maps a row onto a Restaurant by header name, so column order in the
// source file does not matter and unknown columns are ignored. Rows missing
// cuisines, city, latitude or longitude yield ErrIncompleteRecord. A missing
// or non-finite rating is an error rather than an incomplete row.
func FromCSV(record, headers []string) (*Restaurant, error) {
	row := csvRow{record: record, headers: headers}

	r := &Restaurant{
		RestaurantId:      row.get(ColRestaurantId),
		Name:              row.get(ColRestaurantName),
		CountryCode:       row.get(ColCountryCode),
		City:              row.get(ColCity),
		Address:           row.get(ColAddress),
		Locality:          row.get(ColLocality),
		LocalityVerbose:   row.get(ColLocalityVerbose),
		Cuisines:          row.get(ColCuisines),
		AverageCostForTwo: row.get(ColAverageCostForTwo),
		Currency:          row.get(ColCurrency),
		HasTableBooking:   row.get(ColHasTableBooking),
		HasOnlineDelivery: row.get(ColHasOnlineDelivery),
		IsDeliveringNow:   row.get(ColIsDeliveringNow),
		SwitchToOrderMenu: row.get(ColSwitchToOrderMenu),
		RatingColor:       row.get(ColRatingColor),
		RatingText:        row.get(ColRatingText),
	}

	for _, col := range []string{ColCuisines, ColCity, ColLatitude, ColLongitude} {
		if strings.TrimSpace(row.get(col)) == "" {
			return nil, errors.Wrapf(ErrIncompleteRecord, "missing %q", col)
		}
	}

	var err error
	if r.Latitude, err = row.parseFloat(ColLatitude); err != nil {
		return nil, err
	}
	if r.Longitude, err = row.parseFloat(ColLongitude); err != nil {
		return nil, err
	}
	if math.IsNaN(r.Latitude) || math.IsNaN(r.Longitude) {
		return nil, errors.Wrap(ErrIncompleteRecord, "coordinates are NaN")
	}
	if strings.TrimSpace(row.get(ColAggregateRating)) == "" {
		return nil, errors.Newf("missing %q value", ColAggregateRating)
	}
	if r.AggregateRating, err = row.parseFloat(ColAggregateRating); err != nil {
		return nil, err
	}
	if math.IsNaN(r.AggregateRating) || math.IsInf(r.AggregateRating, 0) {
		return nil, errors.Newf("invalid %q value '%s': not a finite number", ColAggregateRating, row.get(ColAggregateRating))
	}
	if r.PriceRange, err = row.parseInt(ColPriceRange); err != nil {
		return nil, err
	}
	if r.Votes, err = row.parseInt(ColVotes); err != nil {
		return nil, err
	}

	return r, nil
}

type csvRow struct {
	record  []string
	headers []string
}

func (row csvRow) get(col string) string {
	for i, h := range row.headers {
		if h == col {
			if i < len(row.record) {
				return row.record[i]
			}
			return ""
		}
	}
	return ""
}

func (row csvRow) parseFloat(col string) (float64, error) {
	val := strings.TrimSpace(row.get(col))
	if val == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %q value '%s'", col, val)
	}
	return f, nil
}

func (row csvRow) parseInt(col string) (int, error) {
	val := strings.TrimSpace(row.get(col))
	if val == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %q value '%s'", col, val)
	}
	return n, nil
}
