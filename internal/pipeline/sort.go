package pipeline

import (
	"sort"
	"time"

	"github.com/aqarhub/aqarfinder/pkg/types"
)

// dateFormats are the accepted date_posted layouts, tried in order.
var dateFormats = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"2006-01-02 15:04:05",
}

// parseDate tries each accepted layout. Total failure returns the zero
// time, which sorts last under newest-first.
func parseDate(raw *string) time.Time {
	if raw == nil {
		return time.Time{}
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, *raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Sort orders listings by the given mode, in place. Absent or unparseable
// sort keys go last in every mode. The sort is stable so equal keys keep
// their merge order, which the first-seen dedup relies on.
func Sort(listings []types.Listing, mode types.SortMode) {
	switch mode {
	case types.SortPriceAsc:
		sortByFloat(listings, func(l types.Listing) *float64 { return l.PriceSAR }, false)
	case types.SortPriceDesc:
		sortByFloat(listings, func(l types.Listing) *float64 { return l.PriceSAR }, true)
	case types.SortSizeDesc:
		sortByFloat(listings, func(l types.Listing) *float64 { return l.SizeSQM }, true)
	case types.SortNewest:
		sort.SliceStable(listings, func(i, j int) bool {
			return parseDate(listings[i].DatePosted).After(parseDate(listings[j].DatePosted))
		})
	}
}

func sortByFloat(listings []types.Listing, key func(types.Listing) *float64, desc bool) {
	sort.SliceStable(listings, func(i, j int) bool {
		a, b := key(listings[i]), key(listings[j])
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		case desc:
			return *a > *b
		default:
			return *a < *b
		}
	})
}
