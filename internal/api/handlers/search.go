package handlers

import (
	"context"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aqarhub/aqarfinder/internal/pipeline"
	"github.com/aqarhub/aqarfinder/pkg/types"
)

// SearchInput runs the full pipeline for a session. Query parameters
// override the stored criteria for this request only; zero values mean
// "keep the stored setting".
type SearchInput struct {
	ID          string  `path:"id"           doc:"Session ID"`
	Purpose     string  `query:"purpose"     doc:"rent or sale"             enum:"rent,sale,"`
	Districts   string  `query:"districts"   doc:"Comma-separated district selection"`
	PriceMin    float64 `query:"price_min"   doc:"Minimum price (SAR)"      minimum:"0"`
	PriceMax    float64 `query:"price_max"   doc:"Maximum price (SAR)"      minimum:"0"`
	BedroomsMin float64 `query:"bedrooms_min" doc:"Minimum bedrooms"        minimum:"0"`
	BedroomsMax float64 `query:"bedrooms_max" doc:"Maximum bedrooms"        minimum:"0"`
	SizeMin     float64 `query:"size_min"    doc:"Minimum size (sqm)"       minimum:"0"`
	SizeMax     float64 `query:"size_max"    doc:"Maximum size (sqm)"       minimum:"0"`
	Furnished   string  `query:"furnished"   doc:"Furnishing filter"        enum:"any,furnished,unfurnished,"`
	SortBy      string  `query:"sort"        doc:"Sort mode"                enum:"newest,price_asc,price_desc,size_desc,"`
}

// SearchOutput is the filtered, sorted, deduplicated result set.
type SearchOutput struct {
	Body struct {
		Listings []types.Listing  `json:"listings"`
		Summary  pipeline.Summary `json:"summary"`
		Criteria types.Criteria   `json:"criteria"`
	}
}

// Search re-runs the whole ingest → normalize → filter → sort → dedup pass
// over the session's registered sources plus any enabled partner adapters.
// An empty result set is a normal response, not an error.
func (h *Handler) Search(
	ctx context.Context,
	input *SearchInput,
) (*SearchOutput, error) {
	s, err := h.catalog.Get(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("session not found")
	}

	criteria := overrideCriteria(s.Criteria(), input)

	sources := append(s.Sources(), h.partners...)
	merged := h.pipe.Merge(ctx, pipeline.Params(criteria), sources...)
	results := h.pipe.Apply(merged, criteria)

	resp := &SearchOutput{}
	resp.Body.Listings = results
	resp.Body.Summary = pipeline.Summarize(results)
	resp.Body.Criteria = criteria
	return resp, nil
}

func overrideCriteria(c types.Criteria, input *SearchInput) types.Criteria {
	if input.Purpose != "" {
		c.Purpose = types.Purpose(input.Purpose)
	}
	if input.Districts != "" {
		var districts []string
		for _, d := range strings.Split(input.Districts, ",") {
			if d = strings.TrimSpace(d); d != "" {
				districts = append(districts, d)
			}
		}
		c.Districts = districts
	}
	if input.PriceMin != 0 {
		c.PriceMin = types.Float(input.PriceMin)
	}
	if input.PriceMax != 0 {
		c.PriceMax = types.Float(input.PriceMax)
	}
	if input.BedroomsMin != 0 {
		c.BedroomsMin = types.Float(input.BedroomsMin)
	}
	if input.BedroomsMax != 0 {
		c.BedroomsMax = types.Float(input.BedroomsMax)
	}
	if input.SizeMin != 0 {
		c.SizeMin = types.Float(input.SizeMin)
	}
	if input.SizeMax != 0 {
		c.SizeMax = types.Float(input.SizeMax)
	}
	if input.Furnished != "" {
		c.Furnished = types.FurnishedFilter(input.Furnished)
	}
	if input.SortBy != "" {
		c.SortBy = types.SortMode(input.SortBy)
	}
	return c
}
