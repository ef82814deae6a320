package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aqarhub/aqarfinder/pkg/types"
)

// AddShortlistInput saves one listing to the session shortlist.
type AddShortlistInput struct {
	ID   string `path:"id" doc:"Session ID"`
	Body types.Listing
}

// AddShortlistOutput reports the new shortlist size.
type AddShortlistOutput struct {
	Body struct {
		Saved int `json:"saved"`
	}
}

// AddShortlist appends the posted listing to the session shortlist.
func (h *Handler) AddShortlist(
	_ context.Context,
	input *AddShortlistInput,
) (*AddShortlistOutput, error) {
	s, err := h.catalog.Get(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("session not found")
	}

	s.AddToShortlist(input.Body)

	resp := &AddShortlistOutput{}
	resp.Body.Saved = len(s.Shortlist())
	return resp, nil
}

// GetShortlistInput fetches a session's saved listings.
type GetShortlistInput struct {
	ID string `path:"id" doc:"Session ID"`
}

// GetShortlistOutput holds the saved listings in save order.
type GetShortlistOutput struct {
	Body struct {
		Listings []types.Listing `json:"listings"`
	}
}

// GetShortlist returns the saved listings in save order.
func (h *Handler) GetShortlist(
	_ context.Context,
	input *GetShortlistInput,
) (*GetShortlistOutput, error) {
	s, err := h.catalog.Get(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("session not found")
	}

	resp := &GetShortlistOutput{}
	resp.Body.Listings = s.Shortlist()
	return resp, nil
}
