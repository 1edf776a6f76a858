package account

import (
	"strings"
	"testing"
)

func TestNormalizeUnauthenticated(t *testing.T) {
	c := Context{
		IsAuthenticated: false,
		CartItems:       []CartItem{{Name: "Dune", Qty: 1, UnitPrice: 15}},
		Orders:          []Order{{OrderID: "o1"}},
	}.Normalize()
	if c.CartItems != nil || c.Orders != nil {
		t.Fatalf("unauthenticated context must carry no cart or orders: %+v", c)
	}
}

func TestContextBlockSignedOut(t *testing.T) {
	block := ContextBlock(Context{})
	if !strings.Contains(block, "NOT signed in") {
		t.Fatalf("signed-out block should ask for sign-in:\n%s", block)
	}
	if strings.Contains(block, "Order ID") {
		t.Fatalf("signed-out block must not leak order details:\n%s", block)
	}
}

func TestContextBlockSignedIn(t *testing.T) {
	block := ContextBlock(Context{
		IsAuthenticated: true,
		CartItems:       []CartItem{{Name: "Dune", Qty: 2, UnitPrice: 15}},
		Orders: []Order{{
			OrderID: "o1", Status: "SHIPPED", Total: 30,
			Items: []OrderItem{{Name: "Dune", Qty: 2}},
		}},
	})
	for _, want := range []string{
		"1 order(s)",
		"Order ID: o1, Status: SHIPPED, Total: $30.00",
		"Dune (2x)",
		"1 item(s) in their cart, total $30.00",
		"- Dune: 2x at $15.00 each",
	} {
		if !strings.Contains(block, want) {
			t.Fatalf("block missing %q:\n%s", want, block)
		}
	}
}
