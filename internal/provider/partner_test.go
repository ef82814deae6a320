package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqarhub/aqarfinder/pkg/types"
)

func TestBayutClient_FetchStub(t *testing.T) {
	t.Parallel()

	c := NewBayutClient("https://api.bayut.sa", "test-key")
	listings, err := c.Fetch(context.Background(), Params{Purpose: types.PurposeRent})
	require.NoError(t, err)
	assert.Empty(t, listings)
	assert.Equal(t, "bayut", c.Name())
}

func TestBayutClient_RateLimiterHonorsContext(t *testing.T) {
	t.Parallel()

	// A zero-rate limiter never admits a request, so a canceled context must
	// surface as an error rather than a hang.
	c := NewBayutClient("https://api.bayut.sa", "k", WithBayutRateLimit(0, 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Fetch(ctx, Params{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter")
}

func TestPropertyFinderClient_FetchStub(t *testing.T) {
	t.Parallel()

	c := NewPropertyFinderClient("https://api.propertyfinder.sa", "id", "secret")
	listings, err := c.Fetch(context.Background(), Params{})
	require.NoError(t, err)
	assert.Empty(t, listings)
	assert.Equal(t, "property_finder", c.Name())
}
