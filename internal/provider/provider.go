// Package provider implements the listing data sources: uploaded CSV files,
// the synthetic demo generator, and the partner API stubs. Every source
// yields records already normalized into the canonical schema, with the
// district centroid fallback applied.
package provider

import (
	"context"

	"github.com/aqarhub/aqarfinder/pkg/types"
)

// Params is the filter bundle passed down to sources that can use it
// (partner APIs, the synthetic generator). CSV sources ignore it; filtering
// proper happens in the pipeline.
type Params struct {
	Districts   []string
	Purpose     types.Purpose
	PriceMin    float64
	PriceMax    float64
	BedroomsMin float64
	BedroomsMax float64
}

// Provider is a named source of canonical listings.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, p Params) ([]types.Listing, error)
}
