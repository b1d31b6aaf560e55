package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/bookvite/storefront/internal/client/api"
	"github.com/bookvite/storefront/internal/client/models"
	"github.com/bookvite/storefront/internal/client/storage"
	"github.com/bookvite/storefront/internal/common"
	"github.com/bookvite/storefront/internal/logging"
)

// CatalogStore caches the product list plus the storefront's featured
// buckets, and owns the two-phase thumbnail-then-record product mutations.
type CatalogStore struct {
	Collection[models.Product]
	client   api.Client
	uploader storage.Uploader
	log      logging.Logger

	featuredMu sync.Mutex
	featured   models.FeaturedProducts
}

func NewCatalogStore(client api.Client, uploader storage.Uploader, log logging.Logger) *CatalogStore {
	return &CatalogStore{client: client, uploader: uploader, log: log.With("store", "catalog")}
}

// Fetch loads products matching the filter. Absent filter fields mean
// "match everything"; present fields are ANDed by the server.
func (s *CatalogStore) Fetch(ctx context.Context, filter models.ProductFilter) error {
	return s.refresh(ctx, func(ctx context.Context) ([]models.Product, error) {
		return s.client.Products(ctx, filter)
	})
}

// Get hydrates a detail view independently of the cached list; it never
// touches the collection's items.
func (s *CatalogStore) Get(ctx context.Context, id string) (*models.Product, error) {
	return s.client.Product(ctx, id)
}

// FetchFeatured refreshes the best-selling and newly-added buckets.
func (s *CatalogStore) FetchFeatured(ctx context.Context) error {
	featured, err := s.client.FeaturedProducts(ctx)
	if err != nil {
		return err
	}
	s.featuredMu.Lock()
	s.featured = *featured
	s.featuredMu.Unlock()
	return nil
}

// Featured returns the cached featured buckets.
func (s *CatalogStore) Featured() models.FeaturedProducts {
	s.featuredMu.Lock()
	defer s.featuredMu.Unlock()
	return s.featured
}

// Add creates a product. When a thumbnail is supplied the upload runs
// first; if it fails the product submit is aborted entirely and the error
// matches common.ErrUploadFailed, so a record never goes out with a stale
// or missing thumbnail URL.
func (s *CatalogStore) Add(ctx context.Context, input models.ProductInput, thumbnail *models.Thumbnail) error {
	if err := s.attachThumbnail(ctx, &input, thumbnail); err != nil {
		s.fail(err)
		return err
	}
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.client.CreateProduct(ctx, input)
	}, s.fetchAll)
}

// Update edits a product, with the same two-phase thumbnail contract as
// Add. A nil thumbnail keeps the record's existing URL.
func (s *CatalogStore) Update(ctx context.Context, id string, input models.ProductInput, thumbnail *models.Thumbnail) error {
	if err := s.attachThumbnail(ctx, &input, thumbnail); err != nil {
		s.fail(err)
		return err
	}
	return s.mutate(ctx, func(ctx context.Context) error {
		return s.client.UpdateProduct(ctx, id, input)
	}, s.fetchAll)
}

func (s *CatalogStore) attachThumbnail(ctx context.Context, input *models.ProductInput, thumbnail *models.Thumbnail) error {
	if thumbnail == nil {
		return nil
	}
	key := storage.ThumbnailKey(thumbnail.Name)
	url, err := s.uploader.Upload(ctx, key, thumbnail.Data)
	if err != nil {
		s.log.Error(ctx, "thumbnail upload failed", "key", key, "error", err.Error())
		return fmt.Errorf("%w: %v", common.ErrUploadFailed, err)
	}
	input.ThumbnailURL = url
	return nil
}

// fetchAll is the post-mutation resynchronization: an unfiltered product
// list, as the console always shows the full catalog.
func (s *CatalogStore) fetchAll(ctx context.Context) ([]models.Product, error) {
	return s.client.Products(ctx, models.ProductFilter{})
}
