package models

// Product is a catalog item. ThumbnailURL is populated only after a
// successful object-storage upload.
type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	ThumbnailURL string  `json:"thumbnailUrl,omitempty"`
}

// FeaturedProducts groups the storefront's highlighted buckets.
type FeaturedProducts struct {
	BestSelling []Product `json:"bestSelling"`
	NewlyAdded  []Product `json:"newlyProduct"`
}

// ProductFilter narrows a catalog fetch. Empty fields are omitted from the
// query string; the server treats absent filters as "match everything".
type ProductFilter struct {
	Category string
	Search   string
}

// ProductInput is the create/update request body for a product.
type ProductInput struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	ThumbnailURL string  `json:"thumbnailUrl,omitempty"`
}

// Thumbnail is a binary blob destined for object storage. Name is the
// original file name, preserved in the storage key.
type Thumbnail struct {
	Name string
	Data []byte
}

// Category groups products. IDs are opaque server-issued strings.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryInput is the create/update request body for a category.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
