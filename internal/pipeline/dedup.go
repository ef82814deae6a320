package pipeline

import (
	"strconv"

	"github.com/aqarhub/aqarfinder/internal/metrics"
	"github.com/aqarhub/aqarfinder/pkg/types"
)

// Dedup collapses duplicates in two passes, keeping the first occurrence in
// both: first exact (provider, listing_id), then exact (title, district,
// price_sar) over the result of the first pass. The pass order matters —
// a record surviving pass one can still be collapsed by pass two.
func Dedup(listings []types.Listing) []types.Listing {
	first := dedupBy(listings, identityKey)
	out := dedupBy(first, contentKey)
	if removed := len(listings) - len(out); removed > 0 {
		metrics.DedupRemovedTotal.Add(float64(removed))
	}
	return out
}

func dedupBy(listings []types.Listing, key func(types.Listing) string) []types.Listing {
	seen := make(map[string]struct{}, len(listings))
	out := listings[:0:0]
	for _, l := range listings {
		k := key(l)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, l)
	}
	return out
}

func identityKey(l types.Listing) string {
	return l.Provider + "|" + l.ListingID
}

func contentKey(l types.Listing) string {
	district := ""
	if l.District != nil {
		district = *l.District
	}
	price := "-1"
	if l.PriceSAR != nil {
		price = strconv.FormatFloat(*l.PriceSAR, 'f', -1, 64)
	}
	return l.Title + "|" + district + "|" + price
}
