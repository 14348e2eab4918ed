package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogram_CountsStayWithinBinBounds(t *testing.T) {
	for _, values := range [][]float64{
		{1.8, 4.9, 2.42, 3.04, 3.35, 4.28},
		{0.0, 0.1, 0.2, 0.3, 0.7, 0.9, 1.0},
		{2.4, 2.5, 2.6, 3.1, 3.2, 4.9},
	} {
		for _, n := range []int{PriceBins, 7, RatingBins} {
			t.Run(fmt.Sprintf("%v/%d", values, n), func(t *testing.T) {
				bins := histogram(values, n)
				require.Len(t, bins, n)

				total := 0
				for i, b := range bins {
					inside := 0
					for _, v := range values {
						if v >= b.Start && (v < b.End || (i == n-1 && v == b.End)) {
							inside++
						}
					}
					assert.Equal(t, inside, b.Count, "bin %d [%v, %v)", i, b.Start, b.End)
					total += b.Count
				}
				assert.Equal(t, len(values), total)
			})
		}
	}
}

func TestHistogram_BinsAreContiguous(t *testing.T) {
	bins := histogram([]float64{1.8, 4.9}, RatingBins)

	assert.Equal(t, 1.8, bins[0].Start)
	assert.Equal(t, 4.9, bins[len(bins)-1].End)
	for i := 1; i < len(bins); i++ {
		assert.Equal(t, bins[i-1].End, bins[i].Start)
	}
}

func TestHistogram_Empty(t *testing.T) {
	assert.Equal(t, 0, len(histogram(nil, PriceBins)))
	assert.Equal(t, 0, len(histogram([]float64{1}, 0)))
}
