package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client reads products and reviews from the bookstore gateway.
// Both endpoints are idempotent GETs; the review endpoint may fail per
// product without affecting the rest of the catalog.
type Client struct {
	baseURL string
	httpDo  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpDo:  &http.Client{Timeout: 30 * time.Second},
	}
}

type productsPage struct {
	Page struct {
		Content []Book `json:"content"`
	} `json:"page"`
}

func (c *Client) Products(ctx context.Context) ([]Book, error) {
	endpoint := fmt.Sprintf("%s/api/catalog/products?page=0&size=1000", c.baseURL)
	var out productsPage
	if err := c.getJSON(ctx, endpoint, &out); err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return out.Page.Content, nil
}

func (c *Client) Reviews(ctx context.Context, productID string) ([]Review, error) {
	endpoint := fmt.Sprintf("%s/api/catalog/review?productId=%s", c.baseURL, url.QueryEscape(productID))
	var out []Review
	if err := c.getJSON(ctx, endpoint, &out); err != nil {
		return nil, fmt.Errorf("fetch reviews for %s: %w", productID, err)
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpDo.Do(req)
	if err != nil {
		return err
	}
	defer func(resp *http.Response) {
		_ = resp.Body.Close()
	}(resp)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("gateway http %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
