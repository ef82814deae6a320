package pipeline

import (
	"sort"

	"github.com/aqarhub/aqarfinder/pkg/types"
)

// Summary aggregates the headline numbers shown above the results grid.
// Medians are computed over present values only; with no usable values the
// median is absent.
type Summary struct {
	Count             int      `json:"count"`
	MedianPrice       *float64 `json:"median_price,omitempty"`
	MedianPricePerSQM *float64 `json:"median_price_per_sqm,omitempty"`
}

// Summarize computes the result summary for a filtered listing set.
func Summarize(listings []types.Listing) Summary {
	var prices, perSQM []float64
	for _, l := range listings {
		if l.PriceSAR == nil {
			continue
		}
		prices = append(prices, *l.PriceSAR)
		if l.SizeSQM != nil && *l.SizeSQM > 0 {
			perSQM = append(perSQM, *l.PriceSAR / *l.SizeSQM)
		}
	}

	return Summary{
		Count:             len(listings),
		MedianPrice:       median(prices),
		MedianPricePerSQM: median(perSQM),
	}
}

func median(vals []float64) *float64 {
	if len(vals) == 0 {
		return nil
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	m := sorted[mid]
	if len(sorted)%2 == 0 {
		m = (sorted[mid-1] + sorted[mid]) / 2
	}
	return &m
}
