package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/aqarhub/aqarfinder/pkg/types"
)

// partnerTimeout bounds future partner API calls.
const partnerTimeout = 30 * time.Second

// BayutClient is the partner adapter for the Bayut listings API. Partner
// access has not been granted yet, so Fetch returns zero records; the
// client, credential, and rate-limit plumbing is in place so wiring the
// real endpoint only touches this file.
type BayutClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *slog.Logger
}

// BayutOption configures a BayutClient.
type BayutOption func(*BayutClient)

// WithBayutHTTPClient sets a custom HTTP client.
func WithBayutHTTPClient(hc *http.Client) BayutOption {
	return func(c *BayutClient) {
		c.httpClient = hc
	}
}

// WithBayutRateLimit sets the request rate toward the partner endpoint.
func WithBayutRateLimit(perSecond float64, burst int) BayutOption {
	return func(c *BayutClient) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithBayutLogger sets a custom logger.
func WithBayutLogger(l *slog.Logger) BayutOption {
	return func(c *BayutClient) {
		c.log = l
	}
}

// NewBayutClient creates the Bayut partner adapter.
func NewBayutClient(baseURL, apiKey string, opts ...BayutOption) *BayutClient {
	c := &BayutClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: partnerTimeout},
		limiter:    rate.NewLimiter(rate.Limit(5), 10),
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns "bayut".
func (*BayutClient) Name() string { return "bayut" }

// Fetch returns zero records until partner access is wired up.
//
// TODO: once partner credentials are issued, call
// GET {baseURL}/listings with a Bearer token and map the payload fields
// into the canonical schema.
func (c *BayutClient) Fetch(ctx context.Context, p Params) ([]types.Listing, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("bayut rate limiter: %w", err)
	}

	c.log.Debug("bayut stub called",
		"purpose", p.Purpose,
		"districts", len(p.Districts),
	)
	return nil, nil
}
