package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gemshop/storefront/core/client"
)

// Service reads the public catalog endpoints.
type Service struct {
	api *client.Client
}

// NewService creates a catalog service over the given executor.
func NewService(api *client.Client) *Service {
	return &Service{api: api}
}

// Products lists the general product catalog.
func (s *Service) Products(ctx context.Context) ([]Jewelry, error) {
	var items []Jewelry
	if err := s.api.Do(ctx, client.Get("/products").Public(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Jewelry lists the jewelry catalog.
func (s *Service) Jewelry(ctx context.Context) ([]Jewelry, error) {
	var items []Jewelry
	if err := s.api.Do(ctx, client.Get("/jewelry").Public(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// JewelryByID fetches one jewelry item. A missing item maps to ErrNotFound.
func (s *Service) JewelryByID(ctx context.Context, id string) (Jewelry, error) {
	var item Jewelry
	err := s.api.Do(ctx, client.Get("/jewelry/"+id).Public(), &item)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return Jewelry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return Jewelry{}, err
	}
	return item, nil
}
