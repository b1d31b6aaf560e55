package store

import (
	"context"

	"github.com/bookvite/storefront/internal/client/api"
	"github.com/bookvite/storefront/internal/client/models"
	"github.com/bookvite/storefront/internal/logging"
)

// AddressStore caches the user's address book. The IsDefault flag passes
// through untouched; the server owns default selection.
type AddressStore struct {
	Collection[models.Address]
	client api.Client
	log    logging.Logger
}

func NewAddressStore(client api.Client, log logging.Logger) *AddressStore {
	return &AddressStore{client: client, log: log.With("store", "address")}
}

func (s *AddressStore) Fetch(ctx context.Context) error {
	return s.refresh(ctx, s.client.Addresses)
}

func (s *AddressStore) Add(ctx context.Context, input models.AddressInput) error {
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.client.CreateAddress(ctx, input)
	}, s.client.Addresses)
}

func (s *AddressStore) Update(ctx context.Context, id string, input models.AddressInput) error {
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.client.UpdateAddress(ctx, id, input)
	}, s.client.Addresses)
}

func (s *AddressStore) Remove(ctx context.Context, id string) error {
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.client.RemoveAddress(ctx, id)
	}, s.client.Addresses)
}
