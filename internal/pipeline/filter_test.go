package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aqarhub/aqarfinder/pkg/types"
)

func rental(id string, price float64, period string) types.Listing {
	l := types.Listing{
		Provider:  "test",
		ListingID: id,
		Title:     "Listing " + id,
		City:      "Riyadh",
		PriceSAR:  types.Float(price),
	}
	if period != "" {
		l.PricePeriod = types.Str(period)
	}
	return l
}

func ids(listings []types.Listing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.ListingID
	}
	return out
}

func TestFilterPurpose(t *testing.T) {
	t.Parallel()

	listings := []types.Listing{
		rental("monthly", 7000, "monthly"),
		rental("yearly", 80000, "Yearly"),
		rental("weekly", 2000, "weekly"),
		rental("absent", 900000, ""),
	}

	t.Run("rent keeps monthly yearly and absent", func(t *testing.T) {
		t.Parallel()
		got := FilterPurpose(listings, types.PurposeRent)
		assert.Equal(t, []string{"monthly", "yearly", "absent"}, ids(got))
	})

	t.Run("sale keeps only absent", func(t *testing.T) {
		t.Parallel()
		got := FilterPurpose(listings, types.PurposeSale)
		assert.Equal(t, []string{"absent"}, ids(got))
	})

	t.Run("absent period satisfies both purposes", func(t *testing.T) {
		t.Parallel()
		one := []types.Listing{rental("x", 500000, "")}
		assert.Len(t, FilterPurpose(one, types.PurposeRent), 1)
		assert.Len(t, FilterPurpose(one, types.PurposeSale), 1)
	})
}

func TestFilterDistricts(t *testing.T) {
	t.Parallel()

	withDistrict := func(id, district string) types.Listing {
		l := rental(id, 5000, "monthly")
		if district != "" {
			l.District = types.Str(district)
		}
		return l
	}

	listings := []types.Listing{
		withDistrict("malqa", "Al Malqa"),
		withDistrict("hittin", "Hittin"),
		withDistrict("none", ""),
	}

	t.Run("empty selection keeps everything", func(t *testing.T) {
		t.Parallel()
		assert.Len(t, FilterDistricts(listings, nil), 3)
	})

	t.Run("selection filters including absent districts", func(t *testing.T) {
		t.Parallel()
		got := FilterDistricts(listings, []string{"Al Malqa"})
		assert.Equal(t, []string{"malqa"}, ids(got))
	})
}

func TestFilterNumeric(t *testing.T) {
	t.Parallel()

	priced := func(id string, price, bedrooms, size *float64) types.Listing {
		return types.Listing{
			Provider:  "test",
			ListingID: id,
			PriceSAR:  price,
			Bedrooms:  bedrooms,
			SizeSQM:   size,
		}
	}

	tests := []struct {
		name     string
		listings []types.Listing
		criteria types.Criteria
		want     []string
	}{
		{
			name: "inclusive bounds",
			listings: []types.Listing{
				priced("at-min", types.Float(5000), nil, nil),
				priced("at-max", types.Float(8000), nil, nil),
				priced("below", types.Float(4999), nil, nil),
				priced("above", types.Float(8001), nil, nil),
			},
			criteria: types.Criteria{PriceMin: types.Float(5000), PriceMax: types.Float(8000)},
			want:     []string{"at-min", "at-max"},
		},
		{
			name: "absent value always passes",
			listings: []types.Listing{
				priced("no-price", nil, types.Float(3), nil),
				priced("no-size", types.Float(6000), types.Float(3), nil),
			},
			criteria: types.Criteria{
				PriceMin: types.Float(5000),
				SizeMin:  types.Float(100),
			},
			want: []string{"no-price", "no-size"},
		},
		{
			name: "bedroom and size bounds combine",
			listings: []types.Listing{
				priced("fits", types.Float(6000), types.Float(3), types.Float(140)),
				priced("small", types.Float(6000), types.Float(1), types.Float(140)),
				priced("tiny", types.Float(6000), types.Float(3), types.Float(60)),
			},
			criteria: types.Criteria{
				BedroomsMin: types.Float(2),
				SizeMin:     types.Float(100),
			},
			want: []string{"fits"},
		},
		{
			name: "no bounds keeps everything",
			listings: []types.Listing{
				priced("a", nil, nil, nil),
				priced("b", types.Float(1), nil, nil),
			},
			criteria: types.Criteria{},
			want:     []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FilterNumeric(tt.listings, tt.criteria)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterFurnished(t *testing.T) {
	t.Parallel()

	furn := func(id string, v *bool) types.Listing {
		return types.Listing{Provider: "test", ListingID: id, Furnished: v}
	}

	listings := []types.Listing{
		furn("yes", types.Bool(true)),
		furn("no", types.Bool(false)),
		furn("unknown", nil),
	}

	tests := []struct {
		name   string
		choice types.FurnishedFilter
		want   []string
	}{
		{name: "any keeps all", choice: types.FurnishedAny, want: []string{"yes", "no", "unknown"}},
		{name: "empty keeps all", choice: "", want: []string{"yes", "no", "unknown"}},
		{name: "furnished keeps true only", choice: types.FurnishedYes, want: []string{"yes"}},
		{
			name:   "unfurnished keeps false and unknown",
			choice: types.FurnishedNo,
			want:   []string{"no", "unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FilterFurnished(listings, tt.choice)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}
