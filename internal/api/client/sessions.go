package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/aqarhub/aqarfinder/internal/pipeline"
	"github.com/aqarhub/aqarfinder/pkg/types"
)

// Session identifies one server-side browsing session.
type Session struct {
	ID       string `json:"id"`
	Language string `json:"language"`
}

// CreateSession opens a browsing session on the server.
func (c *Client) CreateSession(ctx context.Context, language string) (*Session, error) {
	body := map[string]string{"language": language}
	var s Session
	if err := c.post(ctx, "/api/v1/sessions", body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SetCriteria replaces the session's stored filter criteria.
func (c *Client) SetCriteria(ctx context.Context, sessionID string, criteria types.Criteria) error {
	path := fmt.Sprintf("/api/v1/sessions/%s/criteria", url.PathEscape(sessionID))
	return c.put(ctx, path, criteria, nil)
}

// SetLanguage switches the session's UI language.
func (c *Client) SetLanguage(ctx context.Context, sessionID, language string) error {
	path := fmt.Sprintf("/api/v1/sessions/%s/language", url.PathEscape(sessionID))
	return c.put(ctx, path, map[string]string{"language": language}, nil)
}

// UploadCSV registers raw delimited text as a listing source.
func (c *Client) UploadCSV(ctx context.Context, sessionID, provider string, data []byte) (int, error) {
	path := fmt.Sprintf("/api/v1/sessions/%s/sources/csv", url.PathEscape(sessionID))
	body := map[string]string{"provider": provider, "data": string(data)}
	var resp struct {
		Rows int `json:"rows"`
	}
	if err := c.post(ctx, path, body, &resp); err != nil {
		return 0, err
	}
	return resp.Rows, nil
}

// EnableSynthetic registers the demo data generator for the session.
func (c *Client) EnableSynthetic(ctx context.Context, sessionID string, count int, seed int64) error {
	path := fmt.Sprintf("/api/v1/sessions/%s/sources/synthetic", url.PathEscape(sessionID))
	body := map[string]any{"count": count, "seed": seed}
	return c.post(ctx, path, body, nil)
}

// SearchResult is the server's filtered, deduplicated result set.
type SearchResult struct {
	Listings []types.Listing  `json:"listings"`
	Summary  pipeline.Summary `json:"summary"`
	Criteria types.Criteria   `json:"criteria"`
}

// Search runs the full pipeline for the session.
func (c *Client) Search(ctx context.Context, sessionID string, criteria types.Criteria) (*SearchResult, error) {
	q := url.Values{}
	if criteria.Purpose != "" {
		q.Set("purpose", string(criteria.Purpose))
	}
	if len(criteria.Districts) > 0 {
		q.Set("districts", joinDistricts(criteria.Districts))
	}
	setFloat(q, "price_min", criteria.PriceMin)
	setFloat(q, "price_max", criteria.PriceMax)
	setFloat(q, "bedrooms_min", criteria.BedroomsMin)
	setFloat(q, "bedrooms_max", criteria.BedroomsMax)
	setFloat(q, "size_min", criteria.SizeMin)
	setFloat(q, "size_max", criteria.SizeMax)
	if criteria.Furnished != "" {
		q.Set("furnished", string(criteria.Furnished))
	}
	if criteria.SortBy != "" {
		q.Set("sort", string(criteria.SortBy))
	}

	path := fmt.Sprintf("/api/v1/sessions/%s/search", url.PathEscape(sessionID))
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var result SearchResult
	if err := c.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AddShortlist saves a listing to the session shortlist.
func (c *Client) AddShortlist(ctx context.Context, sessionID string, l types.Listing) error {
	path := fmt.Sprintf("/api/v1/sessions/%s/shortlist", url.PathEscape(sessionID))
	return c.post(ctx, path, l, nil)
}

// GetShortlist returns the session's saved listings.
func (c *Client) GetShortlist(ctx context.Context, sessionID string) ([]types.Listing, error) {
	path := fmt.Sprintf("/api/v1/sessions/%s/shortlist", url.PathEscape(sessionID))
	var resp struct {
		Listings []types.Listing `json:"listings"`
	}
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Listings, nil
}

// DownloadShortlistCSV fetches the shortlist in the canonical CSV layout.
func (c *Client) DownloadShortlistCSV(ctx context.Context, sessionID string) ([]byte, error) {
	path := fmt.Sprintf("/api/v1/sessions/%s/shortlist.csv", url.PathEscape(sessionID))
	return c.getRaw(ctx, path)
}

func setFloat(q url.Values, key string, v *float64) {
	if v != nil {
		q.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
	}
}

func joinDistricts(districts []string) string {
	out := ""
	for i, d := range districts {
		if i > 0 {
			out += ","
		}
		out += d
	}
	return out
}
