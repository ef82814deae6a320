// Package handlers implements the HTTP operations consumed by the
// presentation layer: session management, source registration, search,
// shortlist, contact links, and district metadata.
package handlers

import (
	"log/slog"

	"github.com/aqarhub/aqarfinder/internal/catalog"
	"github.com/aqarhub/aqarfinder/internal/pipeline"
	"github.com/aqarhub/aqarfinder/internal/provider"
	"github.com/aqarhub/aqarfinder/pkg/contact"
)

// Handler carries the shared dependencies of all API operations.
type Handler struct {
	catalog  *catalog.Catalog
	pipe     *pipeline.Pipeline
	partners []provider.Provider
	contact  contact.Builder
	phone    string // default contact phone when a listing has none
	log      *slog.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithPartners registers the partner API adapters consulted on every search.
func WithPartners(partners ...provider.Provider) HandlerOption {
	return func(h *Handler) {
		h.partners = partners
	}
}

// WithContactDefaults sets the contact-link builder and fallback phone.
func WithContactDefaults(b contact.Builder, defaultPhone string) HandlerOption {
	return func(h *Handler) {
		h.contact = b
		h.phone = defaultPhone
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		h.log = l
	}
}

// New creates a Handler.
func New(cat *catalog.Catalog, pipe *pipeline.Pipeline, opts ...HandlerOption) *Handler {
	h := &Handler{
		catalog: cat,
		pipe:    pipe,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
