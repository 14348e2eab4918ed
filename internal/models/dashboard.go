package models

const (
	RatingCategoryFiveStar = "5-Star"
	RatingCategoryOther    = "Other"

	// StarMarker prefixes the name of 5-star restaurants in the ranked table.
	StarMarker = "★ "
)

type CuisineCount struct {
	Cuisine string `json:"cuisine"`
	Count   int    `json:"count"`
}

// Bin is one histogram bucket covering [Start, End); the last bin of a
// histogram also includes End.
type Bin struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Count int     `json:"count"`
}

// Slice is one segment of a categorical distribution (pie chart).
type Slice struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type VotesRatingPoint struct {
	Votes           int     `json:"votes"`
	AggregateRating float64 `json:"aggregate_rating"`
	PriceRange      int     `json:"price_range"`
	Name            string  `json:"name"`
}

type MapPoint struct {
	Name            string  `json:"name"`
	City            string  `json:"city"`
	Cuisines        string  `json:"cuisines"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	AggregateRating float64 `json:"aggregate_rating"`
	RatingCategory  string  `json:"rating_category"`
}

type RankedRestaurant struct {
	Name            string  `json:"name"`
	City            string  `json:"city"`
	AggregateRating float64 `json:"aggregate_rating"`
	Votes           int     `json:"votes"`
}

// DashboardStatistics is the full set of views derived from one dataset and
// filter. AvgRating and AvgVotes are nil when the selection is empty.
type DashboardStatistics struct {
	City                 *string            `json:"city"`
	TotalCities          int                `json:"total_cities"`
	TotalRestaurants     int                `json:"total_restaurants"`
	AvgRating            *float64           `json:"avg_rating"`
	AvgVotes             *int               `json:"avg_votes"`
	TopCuisines          []CuisineCount     `json:"top_cuisines"`
	PriceDistribution    []Bin              `json:"price_distribution"`
	VotesVsRating        []VotesRatingPoint `json:"votes_vs_rating"`
	RatingCategory       []MapPoint         `json:"rating_category"`
	DeliveryDistribution []Slice            `json:"delivery_distribution"`
	BookingDistribution  []Slice            `json:"booking_distribution"`
	RatingHistogram      []Bin              `json:"rating_histogram"`
	Top10Ranked          []RankedRestaurant `json:"top10_ranked"`
}

type CitiesResponse struct {
	Cities []string `json:"cities"`
}

type TableColumn struct {
	Name string `json:"name"`
	Id   string `json:"id"`
}

type TopTableResponse struct {
	Columns []TableColumn      `json:"columns"`
	Rows    []RankedRestaurant `json:"rows"`
}
