package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/aqarhub/aqarfinder/pkg/types"
)

// PropertyFinderClient is the partner adapter for the Property Finder
// listings API. Like the Bayut adapter it returns zero records until
// partner access exists; Property Finder additionally requires an OAuth
// client-credentials exchange before the listings call.
type PropertyFinderClient struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	limiter      *rate.Limiter
	log          *slog.Logger
}

// PropertyFinderOption configures a PropertyFinderClient.
type PropertyFinderOption func(*PropertyFinderClient)

// WithPropertyFinderHTTPClient sets a custom HTTP client.
func WithPropertyFinderHTTPClient(hc *http.Client) PropertyFinderOption {
	return func(c *PropertyFinderClient) {
		c.httpClient = hc
	}
}

// WithPropertyFinderRateLimit sets the request rate toward the partner endpoint.
func WithPropertyFinderRateLimit(perSecond float64, burst int) PropertyFinderOption {
	return func(c *PropertyFinderClient) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithPropertyFinderLogger sets a custom logger.
func WithPropertyFinderLogger(l *slog.Logger) PropertyFinderOption {
	return func(c *PropertyFinderClient) {
		c.log = l
	}
}

// NewPropertyFinderClient creates the Property Finder partner adapter.
func NewPropertyFinderClient(baseURL, clientID, clientSecret string, opts ...PropertyFinderOption) *PropertyFinderClient {
	c := &PropertyFinderClient{
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: partnerTimeout},
		limiter:      rate.NewLimiter(rate.Limit(5), 10),
		log:          slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns "property_finder".
func (*PropertyFinderClient) Name() string { return "property_finder" }

// Fetch returns zero records until partner access is wired up.
//
// TODO: exchange client credentials at {baseURL}/oauth/token, then call the
// listings endpoint with the access token and map the payload into the
// canonical schema.
func (c *PropertyFinderClient) Fetch(ctx context.Context, p Params) ([]types.Listing, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("property finder rate limiter: %w", err)
	}

	c.log.Debug("property finder stub called",
		"purpose", p.Purpose,
		"districts", len(p.Districts),
	)
	return nil, nil
}
