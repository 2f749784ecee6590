package cart

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gemshop/storefront/core/client"
	"github.com/gemshop/storefront/core/mutation"
	"github.com/gemshop/storefront/pkg/money"
)

// Service exposes cart operations over the API with optimistic updates.
// All mutations on one Service are serialized; see core/mutation.
type Service struct {
	api  *client.Client
	ctrl *mutation.Controller[Cart]
	log  *slog.Logger
}

// Option configures the cart service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates a cart service over the given executor.
func NewService(api *client.Client, opts ...Option) *Service {
	s := &Service{api: api, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	s.ctrl = mutation.NewController(Cart{}, Cart.Clone, mutation.WithLogger[Cart](s.log))
	return s
}

// Load fetches the cart from the server and replaces the local collection.
func (s *Service) Load(ctx context.Context) (Cart, error) {
	var resp payload
	if err := s.api.Do(ctx, client.Get("/cart"), &resp); err != nil {
		return Cart{}, err
	}

	loaded := resp.toCart()
	s.ctrl.Replace(loaded)
	return loaded, nil
}

// Current returns the locally visible cart, including optimistic state of
// an in-flight mutation.
func (s *Service) Current() Cart {
	return s.ctrl.State()
}

// SetQuantity changes a line's quantity optimistically. Quantities below
// one are rejected locally without a network call.
func (s *Service) SetQuantity(ctx context.Context, itemID string, quantity int) (Cart, error) {
	result, err := s.ctrl.Apply(ctx, mutation.Mutation[Cart]{
		Name: "cart.set_quantity",
		Validate: func(current Cart) error {
			if quantity < 1 {
				return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
			}
			if _, ok := current.Find(itemID); !ok {
				return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
			}
			return nil
		},
		Apply: func(current Cart) Cart {
			for i := range current.Items {
				if current.Items[i].ItemID == itemID {
					current.Items[i].Quantity = quantity
				}
			}
			return current.withDerived()
		},
		Send: func(ctx context.Context) (*Cart, error) {
			var resp payload
			req := client.Put("/cart/"+itemID, map[string]int{"quantity": quantity})
			if err := s.api.Do(ctx, req, &resp); err != nil {
				return nil, err
			}
			return resp.toCartPtr(), nil
		},
	})
	return result.State, err
}

// Remove deletes a line optimistically.
func (s *Service) Remove(ctx context.Context, itemID string) (Cart, error) {
	result, err := s.ctrl.Apply(ctx, mutation.Mutation[Cart]{
		Name: "cart.remove",
		Validate: func(current Cart) error {
			if _, ok := current.Find(itemID); !ok {
				return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
			}
			return nil
		},
		Apply: func(current Cart) Cart {
			kept := current.Items[:0:0]
			for _, line := range current.Items {
				if line.ItemID != itemID {
					kept = append(kept, line)
				}
			}
			current.Items = kept
			return current.withDerived()
		},
		Send: func(ctx context.Context) (*Cart, error) {
			var resp payload
			if err := s.api.Do(ctx, client.Delete("/cart/"+itemID), &resp); err != nil {
				return nil, err
			}
			return resp.toCartPtr(), nil
		},
	})
	return result.State, err
}

// Clear empties the cart. Clearing an already-empty cart still issues the
// network call and resolves without error.
func (s *Service) Clear(ctx context.Context) (Cart, error) {
	result, err := s.ctrl.Apply(ctx, mutation.Mutation[Cart]{
		Name: "cart.clear",
		Apply: func(current Cart) Cart {
			current.Items = nil
			return current.withDerived()
		},
		Send: func(ctx context.Context) (*Cart, error) {
			var resp payload
			if err := s.api.Do(ctx, client.Delete("/cart"), &resp); err != nil {
				return nil, err
			}
			return resp.toCartPtr(), nil
		},
	})
	return result.State, err
}

// payload tolerates both response shapes the API uses: the flat
// {items, subtotal} form and the wrapped {cart: {items, subtotal}} variant
// some delete handlers return.
type payload struct {
	Items    []Line  `json:"items"`
	Subtotal float64 `json:"subtotal"`
	Cart     *struct {
		Items    []Line  `json:"items"`
		Subtotal float64 `json:"subtotal"`
	} `json:"cart"`
}

func (p payload) toCart() Cart {
	c := Cart{Items: p.Items, Subtotal: money.Round(p.Subtotal)}
	if p.Cart != nil {
		c = Cart{Items: p.Cart.Items, Subtotal: money.Round(p.Cart.Subtotal)}
	}
	if c.Subtotal == 0 && len(c.Items) > 0 {
		c.Subtotal = c.ComputeSubtotal()
	}
	return c
}

// toCartPtr returns the server's collection, or nil when the response did
// not carry one (the optimistic state then stands).
func (p payload) toCartPtr() *Cart {
	if p.Items == nil && p.Cart == nil {
		return nil
	}
	c := p.toCart()
	return &c
}
