package provider

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/aqarhub/aqarfinder/internal/geo"
	"github.com/aqarhub/aqarfinder/pkg/types"
)

// Synthetic data ranges, chosen to look like real Riyadh listings.
const (
	rentPriceMin = 3500
	rentPriceMax = 16000
	salePriceMin = 450000
	salePriceMax = 2500000
	sizeMin      = 70
	sizeMax      = 250
	coordJitter  = 0.003
)

// DefaultSyntheticSeed is the seed used when none is given, so repeat demo
// runs show the same dataset.
const DefaultSyntheticSeed = 17

// SyntheticProvider generates plausible randomized listings for demos and
// testing. It sits behind the same Provider interface as real sources, so
// nothing downstream special-cases it. Output is reproducible for a fixed
// (count, seed) within a run.
type SyntheticProvider struct {
	count int
	seed  int64
	now   func() time.Time
}

// SyntheticOption configures a SyntheticProvider.
type SyntheticOption func(*SyntheticProvider)

// WithSyntheticNowFunc overrides the clock used for date_posted. For tests.
func WithSyntheticNowFunc(f func() time.Time) SyntheticOption {
	return func(p *SyntheticProvider) {
		p.now = f
	}
}

// NewSyntheticProvider creates a generator for count listings.
func NewSyntheticProvider(count int, seed int64, opts ...SyntheticOption) *SyntheticProvider {
	p := &SyntheticProvider{
		count: count,
		seed:  seed,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns "dummy", the provider tag of the demo dataset.
func (p *SyntheticProvider) Name() string { return "dummy" }

// Fetch generates listings for the requested purpose and district selection.
// Rent and sale use distinct price ranges, bathroom count follows bedrooms,
// and coordinates jitter around the district centroid.
func (p *SyntheticProvider) Fetch(_ context.Context, params Params) ([]types.Listing, error) {
	rng := rand.New(rand.NewSource(p.seed))

	choices := params.Districts
	if len(choices) == 0 {
		choices = geo.Districts()[:6]
	}

	forRent := params.Purpose != types.PurposeSale
	today := p.now().Format("2006-01-02")

	listings := make([]types.Listing, 0, p.count)
	for i := 0; i < p.count; i++ {
		district := choices[rng.Intn(len(choices))]
		center, ok := geo.Centroid(district)
		if !ok {
			center = geo.CityCenter
		}

		price := float64(salePriceMin + rng.Intn(salePriceMax-salePriceMin))
		var period *string
		if forRent {
			price = float64(rentPriceMin + rng.Intn(rentPriceMax-rentPriceMin))
			period = types.Str("monthly")
		}

		br := float64(1 + rng.Intn(5))
		ba := br - 1
		if ba < 1 {
			ba = 1
		}
		size := float64(sizeMin + rng.Intn(sizeMax-sizeMin))
		phone := fmt.Sprintf("+9665%08d", 10000000+rng.Intn(89999999))

		listings = append(listings, types.Listing{
			Provider:     "dummy",
			ListingID:    fmt.Sprintf("D-%d", i),
			Title:        fmt.Sprintf("%.0fBR Apartment in %s", br, district),
			PriceSAR:     types.Float(price),
			PricePeriod:  period,
			Bedrooms:     types.Float(br),
			Bathrooms:    types.Float(ba),
			SizeSQM:      types.Float(size),
			Furnished:    types.Bool(rng.Intn(2) == 1),
			District:     types.Str(district),
			City:         "Riyadh",
			Latitude:     types.Float(center.Lat + rng.NormFloat64()*coordJitter),
			Longitude:    types.Float(center.Lon + rng.NormFloat64()*coordJitter),
			Description:  types.Str(fmt.Sprintf("Spacious %.0fBR, %.0f sqm in %s.", br, size, district)),
			DatePosted:   types.Str(today),
			ContactPhone: types.Str(phone),
		})
	}

	return listings, nil
}
