package store

import (
	"context"

	"github.com/bookvite/storefront/internal/client/api"
	"github.com/bookvite/storefront/internal/client/models"
	"github.com/bookvite/storefront/internal/logging"
)

// CategoryStore caches the category list shared by the storefront
// navigation and the console's category management page.
type CategoryStore struct {
	Collection[models.Category]
	client api.Client
	log    logging.Logger
}

func NewCategoryStore(client api.Client, log logging.Logger) *CategoryStore {
	return &CategoryStore{client: client, log: log.With("store", "category")}
}

func (s *CategoryStore) Fetch(ctx context.Context) error {
	return s.refresh(ctx, s.client.Categories)
}

func (s *CategoryStore) Add(ctx context.Context, input models.CategoryInput) error {
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.client.CreateCategory(ctx, input)
	}, s.client.Categories)
}

func (s *CategoryStore) Update(ctx context.Context, id string, input models.CategoryInput) error {
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.client.UpdateCategory(ctx, id, input)
	}, s.client.Categories)
}
