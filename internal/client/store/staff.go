package store

import (
	"context"

	"github.com/bookvite/storefront/internal/client/api"
	"github.com/bookvite/storefront/internal/client/models"
	"github.com/bookvite/storefront/internal/logging"
)

// StaffStore caches staff members for the admin console.
type StaffStore struct {
	Collection[models.StaffMember]
	client api.Client
	log    logging.Logger
}

func NewStaffStore(client api.Client, log logging.Logger) *StaffStore {
	return &StaffStore{client: client, log: log.With("store", "staff")}
}

func (s *StaffStore) Fetch(ctx context.Context) error {
	return s.refresh(ctx, s.client.Staff)
}

func (s *StaffStore) Add(ctx context.Context, input models.StaffInput) error {
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.client.CreateStaff(ctx, input)
	}, s.client.Staff)
}

func (s *StaffStore) Update(ctx context.Context, id string, input models.StaffInput) error {
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.client.UpdateStaff(ctx, id, input)
	}, s.client.Staff)
}
