package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/aqarhub/aqarfinder/internal/geo"
)

// District is one bilingual district catalog entry.
type District struct {
	NameEN   string     `json:"name_en"`
	NameAR   string     `json:"name_ar"`
	Centroid *geo.Point `json:"centroid,omitempty"`
}

// ListDistricts returns the server's district catalog.
func (c *Client) ListDistricts(ctx context.Context) ([]District, error) {
	var resp struct {
		Districts []District `json:"districts"`
	}
	if err := c.get(ctx, "/api/v1/districts", &resp); err != nil {
		return nil, err
	}
	return resp.Districts, nil
}

// ContactLinkRequest holds the inputs for composing a WhatsApp link.
type ContactLinkRequest struct {
	Phone    string `json:"phone,omitempty"`
	Template string `json:"template,omitempty"`
	Title    string `json:"title,omitempty"`
	District string `json:"district,omitempty"`
	Price    string `json:"price,omitempty"`
	Period   string `json:"period,omitempty"`
	URL      string `json:"url,omitempty"`
}

// ContactLinkResponse carries the normalized phone and the deep link.
type ContactLinkResponse struct {
	Phone string `json:"phone"`
	Link  string `json:"link"`
}

// ContactLink asks the server to compose a WhatsApp deep link.
func (c *Client) ContactLink(ctx context.Context, req *ContactLinkRequest) (*ContactLinkResponse, error) {
	var resp ContactLinkResponse
	if err := c.post(ctx, "/api/v1/contact-link", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DownloadTemplate fetches the upload template for a provider.
func (c *Client) DownloadTemplate(ctx context.Context, provider string) ([]byte, error) {
	path := fmt.Sprintf("/api/v1/templates/%s", url.PathEscape(provider))
	return c.getRaw(ctx, path)
}
