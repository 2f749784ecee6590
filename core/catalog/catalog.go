package catalog

import "errors"

// ErrNotFound is returned when a requested catalog item does not exist.
var ErrNotFound = errors.New("catalog: item not found")

// Jewelry is one catalog item as served by the storefront API.
type Jewelry struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}
