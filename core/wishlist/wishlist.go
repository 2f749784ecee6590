package wishlist

import "errors"

var (
	// ErrMissingItem rejects additions without an item reference.
	ErrMissingItem = errors.New("wishlist: item id is required")
	// ErrAlreadyListed rejects adding an item that is already wishlisted.
	ErrAlreadyListed = errors.New("wishlist: item already in wishlist")
	// ErrEntryNotFound is returned when removing an item that is not listed.
	ErrEntryNotFound = errors.New("wishlist: item not in wishlist")
)

// Entry is one wishlisted item. EntryID is server-assigned; optimistic
// additions carry a temporary id until the server's collection replaces it.
type Entry struct {
	EntryID string  `json:"entryId"`
	ItemID  string  `json:"jewelryId"`
	Title   string  `json:"title"`
	Price   float64 `json:"price"`
	Image   string  `json:"image"`
}

// Wishlist is the customer's wishlist collection.
type Wishlist struct {
	Entries []Entry `json:"items"`
}

// Clone returns a deep copy, backing mutation snapshots.
func (w Wishlist) Clone() Wishlist {
	out := w
	out.Entries = append([]Entry(nil), w.Entries...)
	return out
}

// Contains reports whether an item is wishlisted.
func (w Wishlist) Contains(itemID string) bool {
	for _, entry := range w.Entries {
		if entry.ItemID == itemID {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the wishlist has no entries.
func (w Wishlist) IsEmpty() bool {
	return len(w.Entries) == 0
}
