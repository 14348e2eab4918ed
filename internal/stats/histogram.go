package stats

import (
	"slices"

	"github.com/rm-hull/restaurant-insights-api/internal/models"
)

// histogram splits the observed range of values into n equal-width bins.
// When every value is the same the range is widened by half a unit either
// side so the bins still have a width. Bins are half-open [Start, End) except
// the last, which also holds the maximum.
func histogram(values []float64, n int) []models.Bin {
	if len(values) == 0 || n <= 0 {
		return []models.Bin{}
	}

	lo, hi := slices.Min(values), slices.Max(values)
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	width := (hi - lo) / float64(n)

	bins := make([]models.Bin, n)
	for i := range bins {
		bins[i].Start = lo + float64(i)*width
		bins[i].End = lo + float64(i+1)*width
	}
	bins[n-1].End = hi

	for _, v := range values {
		i := int((v - lo) / width)
		if i >= n {
			i = n - 1
		}
		if i < 0 {
			i = 0
		}
		// float rounding in the division can land a value one bin off its
		// [Start, End) bounds; the bounds are authoritative.
		for i < n-1 && v >= bins[i].End {
			i++
		}
		for i > 0 && v < bins[i].Start {
			i--
		}
		bins[i].Count++
	}

	return bins
}
