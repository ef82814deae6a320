package pipeline

import (
	"strings"

	"github.com/aqarhub/aqarfinder/pkg/types"
)

// FilterPurpose keeps records matching the rent/sale convention: rent keeps
// monthly, yearly, and absent periods; sale keeps only absent periods.
// An absent period therefore satisfies both branches; the original system
// behaves this way and the inconsistency is preserved on purpose.
func FilterPurpose(listings []types.Listing, purpose types.Purpose) []types.Listing {
	out := listings[:0:0]
	for _, l := range listings {
		if purpose == types.PurposeSale {
			if l.PricePeriod == nil {
				out = append(out, l)
			}
			continue
		}
		if l.PricePeriod == nil {
			out = append(out, l)
			continue
		}
		switch strings.ToLower(*l.PricePeriod) {
		case "monthly", "yearly":
			out = append(out, l)
		}
	}
	return out
}

// FilterDistricts keeps records whose district is in the selected set.
// An empty selection means no filtering.
func FilterDistricts(listings []types.Listing, districts []string) []types.Listing {
	if len(districts) == 0 {
		return listings
	}
	selected := make(map[string]struct{}, len(districts))
	for _, d := range districts {
		selected[d] = struct{}{}
	}

	out := listings[:0:0]
	for _, l := range listings {
		if l.District == nil {
			continue
		}
		if _, ok := selected[*l.District]; ok {
			out = append(out, l)
		}
	}
	return out
}

// inRange applies the inclusive [min, max] bound to an optional value.
// An absent value always passes: missing data is never grounds for
// exclusion by a numeric filter. Policy, not an accident.
func inRange(v, minBound, maxBound *float64) bool {
	if v == nil {
		return true
	}
	if minBound != nil && *v < *minBound {
		return false
	}
	if maxBound != nil && *v > *maxBound {
		return false
	}
	return true
}

// FilterNumeric applies the price, bedroom, and size range filters.
func FilterNumeric(listings []types.Listing, c types.Criteria) []types.Listing {
	out := listings[:0:0]
	for _, l := range listings {
		if !inRange(l.PriceSAR, c.PriceMin, c.PriceMax) {
			continue
		}
		if !inRange(l.Bedrooms, c.BedroomsMin, c.BedroomsMax) {
			continue
		}
		if !inRange(l.SizeSQM, c.SizeMin, c.SizeMax) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// FilterFurnished keeps records whose furnishing tri-state resolves to the
// requested boolean. Unknown resolves to false, so it only survives the
// "unfurnished" choice. "any" keeps everything.
func FilterFurnished(listings []types.Listing, choice types.FurnishedFilter) []types.Listing {
	if choice == "" || choice == types.FurnishedAny {
		return listings
	}
	want := choice == types.FurnishedYes

	out := listings[:0:0]
	for _, l := range listings {
		got := l.Furnished != nil && *l.Furnished
		if got == want {
			out = append(out, l)
		}
	}
	return out
}
