package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/aqarhub/aqarfinder/pkg/contact"
)

// ContactLinkInput builds a WhatsApp deep link for one displayed listing.
// An empty phone falls back to the configured default; an empty template
// falls back to the configured message template.
type ContactLinkInput struct {
	Body struct {
		Phone    string `json:"phone,omitempty"    doc:"Free-form phone number"`
		Template string `json:"template,omitempty" doc:"Message template with {title} {district} {price} {period} {url}"`
		Title    string `json:"title,omitempty"`
		District string `json:"district,omitempty"`
		Price    string `json:"price,omitempty"`
		Period   string `json:"period,omitempty"`
		URL      string `json:"url,omitempty"`
	}
}

// ContactLinkOutput carries the composed deep link.
type ContactLinkOutput struct {
	Body struct {
		Phone string `json:"phone"`
		Link  string `json:"link"`
	}
}

// ContactLink normalizes the phone and composes the wa.me link. With no
// usable phone at all the contact action must be suppressed, so the
// response is 422.
func (h *Handler) ContactLink(
	_ context.Context,
	input *ContactLinkInput,
) (*ContactLinkOutput, error) {
	phone := input.Body.Phone
	if phone == "" {
		phone = h.phone
	}

	builder := h.contact
	if input.Body.Template != "" {
		builder.Template = input.Body.Template
	}

	msg := contact.Message{
		Title:    input.Body.Title,
		District: input.Body.District,
		Price:    input.Body.Price,
		Period:   input.Body.Period,
		URL:      input.Body.URL,
	}

	link, ok := builder.BuildLink(phone, msg)
	if !ok {
		return nil, huma.Error422UnprocessableEntity("no valid phone number")
	}

	cc := builder.CountryCode
	if cc == "" {
		cc = contact.DefaultCountryCode
	}
	normalized, _ := contact.NormalizePhone(phone, cc)

	resp := &ContactLinkOutput{}
	resp.Body.Phone = normalized
	resp.Body.Link = link
	return resp, nil
}
