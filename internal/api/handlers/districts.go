package handlers

import (
	"context"

	"github.com/aqarhub/aqarfinder/internal/geo"
)

// District is one catalog entry with bilingual names and, when known, a
// centroid for map display.
type District struct {
	NameEN   string     `json:"name_en"`
	NameAR   string     `json:"name_ar"`
	Centroid *geo.Point `json:"centroid,omitempty"`
}

// ListDistrictsInput has no parameters.
type ListDistrictsInput struct{}

// ListDistrictsOutput holds the district catalog in display order.
type ListDistrictsOutput struct {
	Body struct {
		Districts []District `json:"districts"`
	}
}

// ListDistricts returns the bilingual district catalog.
func (h *Handler) ListDistricts(
	_ context.Context,
	_ *ListDistrictsInput,
) (*ListDistrictsOutput, error) {
	names := geo.Districts()
	districts := make([]District, 0, len(names))
	for _, en := range names {
		d := District{NameEN: en, NameAR: geo.ArabicName(en)}
		if p, ok := geo.Centroid(en); ok {
			centroid := p
			d.Centroid = &centroid
		}
		districts = append(districts, d)
	}

	resp := &ListDistrictsOutput{}
	resp.Body.Districts = districts
	return resp, nil
}
