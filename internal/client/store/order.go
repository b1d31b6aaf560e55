package store

import (
	"context"

	"github.com/bookvite/storefront/internal/client/api"
	"github.com/bookvite/storefront/internal/client/models"
	"github.com/bookvite/storefront/internal/logging"
)

// OrderStore caches order lists: the customer's own history or, in the
// console, every order. Which one items holds depends on the last fetch
// dispatched, matching how the two pages never coexist.
type OrderStore struct {
	Collection[models.Order]
	client api.Client
	cart   *CartStore
	log    logging.Logger
}

// NewOrderStore wires the cross-entity coupling: placing an order empties
// the cart server-side, so a successful placement re-fetches the cart.
func NewOrderStore(client api.Client, cart *CartStore, log logging.Logger) *OrderStore {
	return &OrderStore{client: client, cart: cart, log: log.With("store", "order")}
}

// Fetch loads the customer's own order history.
func (s *OrderStore) Fetch(ctx context.Context) error {
	return s.refresh(ctx, s.client.Orders)
}

// FetchAll loads every order for the console.
func (s *OrderStore) FetchAll(ctx context.Context) error {
	return s.refresh(ctx, s.client.AllOrders)
}

// Get hydrates a single order's detail view without touching items.
func (s *OrderStore) Get(ctx context.Context, id string) (*models.Order, error) {
	return s.client.Order(ctx, id)
}

// Place submits an order. On success the cart collection is re-fetched
// exactly once; the order list itself is not re-fetched here, the history
// page fetches on entry.
func (s *OrderStore) Place(ctx context.Context, placement models.OrderPlacement) error {
	s.begin()
	if err := s.client.PlaceOrder(ctx, placement); err != nil {
		s.fail(err)
		return err
	}
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()

	s.log.Info(ctx, "order placed", "addressID", placement.ShippingAddressID, "payment", placement.PaymentMethod)
	return s.cart.Fetch(ctx)
}

// SetStatus updates an order's status from the console and re-fetches the
// full order list. The status string is submitted verbatim; transitions
// are the server's business.
func (s *OrderStore) SetStatus(ctx context.Context, id, status string) error {
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.client.UpdateOrderStatus(ctx, id, status)
	}, s.client.AllOrders)
}
