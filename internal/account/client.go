package account

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Client reads the signed-in shopper's orders and cart from the gateway.
// It is only invoked when the caller holds a bearer token; without one the
// assistant runs with an unauthenticated Context.
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

// Load fetches orders and cart for the token holder. Either fetch failing
// degrades to an empty collection rather than failing the session: order
// and cart context is an enrichment, never a precondition.
func (c *Client) Load(ctx context.Context, token string) Context {
	if token == "" {
		return Context{}
	}
	out := Context{IsAuthenticated: true}

	var orders []Order
	if err := c.getJSON(ctx, c.baseURL+"/api/order/order", token, &orders); err != nil {
		log.Printf("orders unavailable: %v", err)
	} else {
		out.Orders = orders
	}

	var cart struct {
		CartItems []CartItem `json:"cartItems"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/api/cart/cart", token, &cart); err != nil {
		log.Printf("cart unavailable: %v", err)
	} else {
		out.CartItems = cart.CartItems
	}
	return out
}

func (c *Client) getJSON(ctx context.Context, endpoint, token string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
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
