package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aqarhub/aqarfinder/internal/provider"
)

// AddCSVSourceInput registers an uploaded delimited file as a session source.
type AddCSVSourceInput struct {
	ID   string `path:"id" doc:"Session ID"`
	Body struct {
		Provider string `json:"provider" doc:"Provider name tagging the rows" minLength:"1"`
		Data     string `json:"data"     doc:"Raw delimited text with a header row"`
	}
}

// AddCSVSourceOutput reports how many rows the upload yields.
type AddCSVSourceOutput struct {
	Body struct {
		Provider string `json:"provider"`
		Rows     int    `json:"rows"`
	}
}

// AddCSVSource registers an uploaded CSV as a listing source. The upload is
// parsed once here to report a row count; searches re-parse it so one bad
// upload can never poison the session state.
func (h *Handler) AddCSVSource(
	ctx context.Context,
	input *AddCSVSourceInput,
) (*AddCSVSourceOutput, error) {
	s, err := h.catalog.Get(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("session not found")
	}

	src := provider.NewCSVProvider(
		input.Body.Provider,
		[]byte(input.Body.Data),
		provider.WithCSVLogger(h.log),
	)

	listings, err := src.Fetch(ctx, provider.Params{})
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("unreadable upload: " + err.Error())
	}

	s.AddSource(src)

	resp := &AddCSVSourceOutput{}
	resp.Body.Provider = input.Body.Provider
	resp.Body.Rows = len(listings)
	return resp, nil
}

// AddSyntheticSourceInput enables the demo data generator for a session.
type AddSyntheticSourceInput struct {
	ID   string `path:"id" doc:"Session ID"`
	Body struct {
		Count int   `json:"count,omitempty" doc:"Listings to generate (default 40)" minimum:"0" maximum:"10000"`
		Seed  int64 `json:"seed,omitempty"  doc:"Random seed (default 17)"`
	}
}

// AddSyntheticSourceOutput confirms the generator settings.
type AddSyntheticSourceOutput struct {
	Body struct {
		Count int   `json:"count"`
		Seed  int64 `json:"seed"`
	}
}

// AddSyntheticSource registers the synthetic demo generator as a session
// source. It sits behind the same adapter interface as real uploads.
func (h *Handler) AddSyntheticSource(
	_ context.Context,
	input *AddSyntheticSourceInput,
) (*AddSyntheticSourceOutput, error) {
	s, err := h.catalog.Get(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("session not found")
	}

	count := input.Body.Count
	if count == 0 {
		count = 40
	}
	seed := input.Body.Seed
	if seed == 0 {
		seed = provider.DefaultSyntheticSeed
	}

	s.AddSource(provider.NewSyntheticProvider(count, seed))

	resp := &AddSyntheticSourceOutput{}
	resp.Body.Count = count
	resp.Body.Seed = seed
	return resp, nil
}
