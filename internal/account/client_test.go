package account

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func gatewayStub(t *testing.T, ordersStatus, cartStatus int) (*httptest.Server, *[]string) {
	t.Helper()
	var tokens []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokens = append(tokens, r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/api/order/order":
			w.WriteHeader(ordersStatus)
			if ordersStatus == http.StatusOK {
				_, _ = w.Write([]byte(`[{"orderId":"o1","orderStatus":"SHIPPED","totalOrderAmount":30,"orderItemResponseList":[{"productName":"Dune","orderItemQty":2}]}]`))
			}
		case "/api/cart/cart":
			w.WriteHeader(cartStatus)
			if cartStatus == http.StatusOK {
				_, _ = w.Write([]byte(`{"cartItems":[{"productName":"Dune","quantity":2,"price":15}]}`))
			}
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &tokens
}

func TestLoadDecodesOrdersAndCart(t *testing.T) {
	srv, tokens := gatewayStub(t, http.StatusOK, http.StatusOK)

	got := NewClient(srv.URL).Load(context.Background(), "tok123")
	if !got.IsAuthenticated {
		t.Fatalf("token holder should be authenticated: %+v", got)
	}
	if len(got.Orders) != 1 || got.Orders[0].OrderID != "o1" || got.Orders[0].Status != "SHIPPED" || got.Orders[0].Total != 30 {
		t.Fatalf("orders not decoded: %+v", got.Orders)
	}
	if len(got.Orders[0].Items) != 1 || got.Orders[0].Items[0].Name != "Dune" || got.Orders[0].Items[0].Qty != 2 {
		t.Fatalf("order items not decoded: %+v", got.Orders[0].Items)
	}
	if len(got.CartItems) != 1 || got.CartItems[0].Name != "Dune" || got.CartItems[0].Qty != 2 || got.CartItems[0].UnitPrice != 15 {
		t.Fatalf("cart not decoded: %+v", got.CartItems)
	}
	for _, tok := range *tokens {
		if tok != "Bearer tok123" {
			t.Fatalf("missing bearer token, got %q", tok)
		}
	}
}

func TestLoadDegradesPerEndpoint(t *testing.T) {
	srv, _ := gatewayStub(t, http.StatusInternalServerError, http.StatusOK)

	got := NewClient(srv.URL).Load(context.Background(), "tok123")
	if !got.IsAuthenticated {
		t.Fatalf("an endpoint failure must not drop authentication: %+v", got)
	}
	if len(got.Orders) != 0 {
		t.Fatalf("failed orders fetch should degrade to empty: %+v", got.Orders)
	}
	if len(got.CartItems) != 1 {
		t.Fatalf("cart should survive the orders failure: %+v", got.CartItems)
	}
}

func TestLoadWithoutToken(t *testing.T) {
	srv, tokens := gatewayStub(t, http.StatusOK, http.StatusOK)

	got := NewClient(srv.URL).Load(context.Background(), "")
	if got.IsAuthenticated || got.Orders != nil || got.CartItems != nil {
		t.Fatalf("empty token must yield the unauthenticated context: %+v", got)
	}
	if len(*tokens) != 0 {
		t.Fatalf("no token means no gateway calls, saw %d", len(*tokens))
	}
}
