// Package pipeline merges normalized listings from all active providers and
// applies the filter, sort, and deduplication passes. Nothing here raises
// for malformed data: values degraded to absent by the normalizer ride
// through the filters under the inclusive-by-default range policy.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/aqarhub/aqarfinder/internal/metrics"
	"github.com/aqarhub/aqarfinder/internal/provider"
	"github.com/aqarhub/aqarfinder/pkg/types"
)

// Pipeline runs the ingest → filter → sort → dedup pass.
type Pipeline struct {
	log *slog.Logger
}

// Option configures the Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		p.log = l
	}
}

// New creates a Pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{log: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Merge fetches from every source and concatenates the results in source
// order. A failing source is logged, counted, and skipped; one bad upload
// or unreachable partner never empties the working set.
func (p *Pipeline) Merge(
	ctx context.Context,
	params provider.Params,
	sources ...provider.Provider,
) []types.Listing {
	var merged []types.Listing
	for _, src := range sources {
		listings, err := src.Fetch(ctx, params)
		if err != nil {
			p.log.Warn("source fetch failed, skipping",
				"provider", src.Name(),
				"error", err,
			)
			metrics.SourceErrorsTotal.WithLabelValues(src.Name()).Inc()
			continue
		}
		merged = append(merged, listings...)
	}
	return merged
}

// Apply runs the filter chain, sort, and two-pass dedup, in that order,
// over an already-merged working set.
func (p *Pipeline) Apply(listings []types.Listing, c types.Criteria) []types.Listing {
	start := time.Now()
	defer func() {
		metrics.SearchDuration.Observe(time.Since(start).Seconds())
	}()

	out := FilterPurpose(listings, c.Purpose)
	out = FilterDistricts(out, c.Districts)
	out = FilterNumeric(out, c)
	out = FilterFurnished(out, c.Furnished)
	Sort(out, c.SortBy)
	return Dedup(out)
}

// Params derives the provider filter bundle from search criteria. Partner
// APIs take the bounds server-side; unset bounds stay zero.
func Params(c types.Criteria) provider.Params {
	p := provider.Params{
		Districts: c.Districts,
		Purpose:   c.Purpose,
	}
	if c.PriceMin != nil {
		p.PriceMin = *c.PriceMin
	}
	if c.PriceMax != nil {
		p.PriceMax = *c.PriceMax
	}
	if c.BedroomsMin != nil {
		p.BedroomsMin = *c.BedroomsMin
	}
	if c.BedroomsMax != nil {
		p.BedroomsMax = *c.BedroomsMax
	}
	return p
}
