package account

import (
	"fmt"
	"strings"
)

// Context is the optional signed-in shopper state surfaced to the model.
// When the user is not authenticated both collections are empty; Normalize
// enforces that.
type Context struct {
	IsAuthenticated bool
	CartItems       []CartItem
	Orders          []Order
}

type CartItem struct {
	Name      string  `json:"productName"`
	Qty       int     `json:"quantity"`
	UnitPrice float64 `json:"price"`
}

type Order struct {
	OrderID string      `json:"orderId"`
	Status  string      `json:"orderStatus"`
	Total   float64     `json:"totalOrderAmount"`
	Items   []OrderItem `json:"orderItemResponseList"`
}

type OrderItem struct {
	Name string `json:"productName"`
	Qty  int    `json:"orderItemQty"`
}

// Normalize drops cart/order data that leaked in without authentication.
func (c Context) Normalize() Context {
	if !c.IsAuthenticated {
		c.CartItems = nil
		c.Orders = nil
	}
	return c
}

// ContextBlock renders the order and cart sections of the prompt. For a
// signed-out user it states that sign-in is required instead of showing
// data, leaving catalog questions unaffected.
func ContextBlock(c Context) string {
	c = c.Normalize()
	var b strings.Builder

	b.WriteString("USER'S ORDER INFORMATION:\n")
	if !c.IsAuthenticated {
		b.WriteString("User is NOT signed in. To view or place orders, they need to sign in first.\n")
	} else if len(c.Orders) == 0 {
		b.WriteString("User is signed in. No orders yet.\n")
	} else {
		fmt.Fprintf(&b, "User is signed in. They have %d order(s).\n", len(c.Orders))
		for _, o := range c.Orders {
			fmt.Fprintf(&b, "- Order ID: %s, Status: %s, Total: $%.2f\n", o.OrderID, o.Status, o.Total)
			for _, it := range o.Items {
				fmt.Fprintf(&b, "  * %s (%dx)\n", it.Name, it.Qty)
			}
		}
	}

	b.WriteString("\nUSER'S SHOPPING CART INFORMATION:\n")
	if !c.IsAuthenticated {
		b.WriteString("User is NOT signed in. To view or manage the cart, they need to sign in first.\n")
	} else if len(c.CartItems) == 0 {
		b.WriteString("User is signed in. Cart is empty.\n")
	} else {
		total := 0.0
		for _, it := range c.CartItems {
			total += it.UnitPrice * float64(it.Qty)
		}
		fmt.Fprintf(&b, "User is signed in. They have %d item(s) in their cart, total $%.2f.\n", len(c.CartItems), total)
		for _, it := range c.CartItems {
			fmt.Fprintf(&b, "- %s: %dx at $%.2f each\n", it.Name, it.Qty, it.UnitPrice)
		}
	}
	return b.String()
}
