package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aqarhub/aqarfinder/pkg/types"
)

// CreateSessionInput is the input for opening a browsing session.
type CreateSessionInput struct {
	Body struct {
		Language string `json:"language,omitempty" doc:"UI language" enum:"en,ar,"`
	}
}

// CreateSessionOutput is the response for opening a browsing session.
type CreateSessionOutput struct {
	Body struct {
		ID       string `json:"id"`
		Language string `json:"language"`
	}
}

// CreateSession opens a new in-memory browsing session.
func (h *Handler) CreateSession(
	_ context.Context,
	input *CreateSessionInput,
) (*CreateSessionOutput, error) {
	lang := input.Body.Language
	if lang == "" {
		lang = "en"
	}
	s := h.catalog.NewSession(lang)

	resp := &CreateSessionOutput{}
	resp.Body.ID = s.ID
	resp.Body.Language = s.Language
	return resp, nil
}

// SetCriteriaInput is the input for replacing a session's filter criteria.
type SetCriteriaInput struct {
	ID   string `path:"id" doc:"Session ID"`
	Body types.Criteria
}

// SetCriteriaOutput echoes the stored criteria.
type SetCriteriaOutput struct {
	Body types.Criteria
}

// SetCriteria replaces the session's filter criteria.
func (h *Handler) SetCriteria(
	_ context.Context,
	input *SetCriteriaInput,
) (*SetCriteriaOutput, error) {
	s, err := h.catalog.Get(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("session not found")
	}

	s.SetCriteria(input.Body)
	return &SetCriteriaOutput{Body: s.Criteria()}, nil
}

// SetLanguageInput switches the session's UI language.
type SetLanguageInput struct {
	ID   string `path:"id" doc:"Session ID"`
	Body struct {
		Language string `json:"language" doc:"UI language" enum:"en,ar"`
	}
}

// SetLanguageOutput echoes the stored language.
type SetLanguageOutput struct {
	Body struct {
		ID       string `json:"id"`
		Language string `json:"language"`
	}
}

// SetLanguage switches the session's UI language.
func (h *Handler) SetLanguage(
	_ context.Context,
	input *SetLanguageInput,
) (*SetLanguageOutput, error) {
	s, err := h.catalog.Get(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("session not found")
	}

	s.SetLanguage(input.Body.Language)

	resp := &SetLanguageOutput{}
	resp.Body.ID = s.ID
	resp.Body.Language = s.Language
	return resp, nil
}
