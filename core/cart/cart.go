package cart

import (
	"errors"

	"github.com/gemshop/storefront/pkg/money"
)

var (
	// ErrInvalidQuantity rejects quantity changes below one. Removing a line
	// is an explicit operation, not a quantity of zero.
	ErrInvalidQuantity = errors.New("cart: quantity must be at least 1")
	// ErrItemNotFound is returned when mutating a line that is not in the cart.
	ErrItemNotFound = errors.New("cart: item not in cart")
)

// Line is one cart entry.
type Line struct {
	ItemID    string  `json:"jewelryId"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// Total is the line's extended price.
func (l Line) Total() float64 {
	return money.Round(l.UnitPrice * float64(l.Quantity))
}

// Cart is the customer's cart collection. Subtotal is derived from the
// lines; it is recomputed locally on optimistic changes and overwritten by
// the server's figure once a mutation is confirmed.
type Cart struct {
	Items    []Line  `json:"items"`
	Subtotal float64 `json:"subtotal"`
}

// Clone returns a deep copy, backing mutation snapshots.
func (c Cart) Clone() Cart {
	out := c
	out.Items = append([]Line(nil), c.Items...)
	return out
}

// ComputeSubtotal derives the subtotal from the lines.
func (c Cart) ComputeSubtotal() float64 {
	var sum float64
	for _, line := range c.Items {
		sum += line.UnitPrice * float64(line.Quantity)
	}
	return money.Round(sum)
}

// Find returns the line for an item id.
func (c Cart) Find(itemID string) (Line, bool) {
	for _, line := range c.Items {
		if line.ItemID == itemID {
			return line, true
		}
	}
	return Line{}, false
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// withDerived returns the cart with its subtotal recomputed.
func (c Cart) withDerived() Cart {
	c.Subtotal = c.ComputeSubtotal()
	return c
}
