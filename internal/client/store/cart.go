package store

import (
	"context"
	"fmt"

	"github.com/bookvite/storefront/internal/client/api"
	"github.com/bookvite/storefront/internal/client/models"
	"github.com/bookvite/storefront/internal/logging"
)

// CartStore caches the authenticated user's cart lines. Every mutation
// re-fetches the whole cart so server-side adjustments (merged lines,
// recalculated prices) are always reflected.
type CartStore struct {
	Collection[models.CartLine]
	client api.Client
	log    logging.Logger
}

func NewCartStore(client api.Client, log logging.Logger) *CartStore {
	return &CartStore{client: client, log: log.With("store", "cart")}
}

// Fetch replaces the cached lines with the server's view of the cart.
func (s *CartStore) Fetch(ctx context.Context) error {
	return s.refresh(ctx, s.client.CartLines)
}

// Add puts quantity units of a product into the cart.
func (s *CartStore) Add(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.client.AddCartLine(ctx, models.CartAdd{ProductID: productID, Quantity: quantity})
	}, s.client.CartLines)
}

// Remove deletes a cart line.
func (s *CartStore) Remove(ctx context.Context, lineID string) error {
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.client.RemoveCartLine(ctx, lineID)
	}, s.client.CartLines)
}

// Increment raises a line's quantity by one.
func (s *CartStore) Increment(ctx context.Context, lineID string) error {
	line, err := s.find(lineID)
	if err != nil {
		return err
	}
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.client.UpdateCartLine(ctx, lineID, line.Quantity+1)
	}, s.client.CartLines)
}

// Decrement lowers a line's quantity by one. A quantity-1 line is removed
// outright; a zero-quantity update is never sent.
func (s *CartStore) Decrement(ctx context.Context, lineID string) error {
	line, err := s.find(lineID)
	if err != nil {
		return err
	}
	if line.Quantity <= 1 {
		return s.Remove(ctx, lineID)
	}
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.client.UpdateCartLine(ctx, lineID, line.Quantity-1)
	}, s.client.CartLines)
}

// Total computes the cart's grand total from the cached lines.
func (s *CartStore) Total() float64 {
	var total float64
	for _, line := range s.Items() {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

func (s *CartStore) find(lineID string) (models.CartLine, error) {
	for _, line := range s.Items() {
		if line.ID == lineID {
			return line, nil
		}
	}
	return models.CartLine{}, fmt.Errorf("no cart line %q", lineID)
}
