package wishlist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gemshop/storefront/core/client"
	"github.com/gemshop/storefront/core/mutation"
)

// Service exposes wishlist operations over the API with optimistic updates.
type Service struct {
	api  *client.Client
	ctrl *mutation.Controller[Wishlist]
	log  *slog.Logger
}

// Option configures the wishlist service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates a wishlist service over the given executor.
func NewService(api *client.Client, opts ...Option) *Service {
	s := &Service{api: api, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	s.ctrl = mutation.NewController(Wishlist{}, Wishlist.Clone, mutation.WithLogger[Wishlist](s.log))
	return s
}

// Load fetches the wishlist and replaces the local collection.
func (s *Service) Load(ctx context.Context) (Wishlist, error) {
	var resp payload
	if err := s.api.Do(ctx, client.Get("/wishlist"), &resp); err != nil {
		return Wishlist{}, err
	}

	loaded := resp.toWishlist()
	s.ctrl.Replace(loaded)
	return loaded, nil
}

// Current returns the locally visible wishlist.
func (s *Service) Current() Wishlist {
	return s.ctrl.State()
}

// Add wishlists an item optimistically. The optimistic entry carries a
// temporary id; the server's collection replaces it on confirmation.
func (s *Service) Add(ctx context.Context, item Entry) (Wishlist, error) {
	result, err := s.ctrl.Apply(ctx, mutation.Mutation[Wishlist]{
		Name: "wishlist.add",
		Validate: func(current Wishlist) error {
			if item.ItemID == "" {
				return ErrMissingItem
			}
			if current.Contains(item.ItemID) {
				return fmt.Errorf("%w: %s", ErrAlreadyListed, item.ItemID)
			}
			return nil
		},
		Apply: func(current Wishlist) Wishlist {
			optimistic := item
			optimistic.EntryID = "pending-" + uuid.NewString()
			current.Entries = append(current.Entries, optimistic)
			return current
		},
		Send: func(ctx context.Context) (*Wishlist, error) {
			var resp payload
			req := client.Post("/wishlist", map[string]any{
				"jewelryId": item.ItemID,
				"title":     item.Title,
				"price":     item.Price,
				"image":     item.Image,
			})
			if err := s.api.Do(ctx, req, &resp); err != nil {
				return nil, err
			}
			return resp.toWishlistPtr(), nil
		},
	})
	return result.State, err
}

// Remove drops an item from the wishlist optimistically.
func (s *Service) Remove(ctx context.Context, itemID string) (Wishlist, error) {
	result, err := s.ctrl.Apply(ctx, mutation.Mutation[Wishlist]{
		Name: "wishlist.remove",
		Validate: func(current Wishlist) error {
			if !current.Contains(itemID) {
				return fmt.Errorf("%w: %s", ErrEntryNotFound, itemID)
			}
			return nil
		},
		Apply: func(current Wishlist) Wishlist {
			kept := current.Entries[:0:0]
			for _, entry := range current.Entries {
				if entry.ItemID != itemID {
					kept = append(kept, entry)
				}
			}
			current.Entries = kept
			return current
		},
		Send: func(ctx context.Context) (*Wishlist, error) {
			var resp payload
			if err := s.api.Do(ctx, client.Delete("/wishlist/"+itemID), &resp); err != nil {
				return nil, err
			}
			return resp.toWishlistPtr(), nil
		},
	})
	return result.State, err
}

// Clear empties the wishlist. Clearing an already-empty wishlist still
// issues the network call and resolves without error.
func (s *Service) Clear(ctx context.Context) (Wishlist, error) {
	result, err := s.ctrl.Apply(ctx, mutation.Mutation[Wishlist]{
		Name: "wishlist.clear",
		Apply: func(current Wishlist) Wishlist {
			current.Entries = nil
			return current
		},
		Send: func(ctx context.Context) (*Wishlist, error) {
			var resp payload
			if err := s.api.Do(ctx, client.Delete("/wishlist"), &resp); err != nil {
				return nil, err
			}
			return resp.toWishlistPtr(), nil
		},
	})
	return result.State, err
}

type payload struct {
	Items []Entry `json:"items"`
}

func (p payload) toWishlist() Wishlist {
	return Wishlist{Entries: p.Items}
}

func (p payload) toWishlistPtr() *Wishlist {
	if p.Items == nil {
		return nil
	}
	w := p.toWishlist()
	return &w
}
