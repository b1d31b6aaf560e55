// Package storage is the object-storage collaborator boundary: it accepts a
// binary blob at a generated key and returns a durable retrieval URL.
package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
)

// Uploader stores a blob under key and returns a URL from which it can be
// retrieved later. Implementations must not partially succeed: either the
// blob is stored and a URL returned, or an error is returned.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte) (string, error)
}

// ThumbnailKey generates a fresh storage key for a product thumbnail.
// The uuid segment makes keys unique even for identical file names.
func ThumbnailKey(filename string) string {
	return fmt.Sprintf("thumbnails/%s/%s", uuid.NewString(), filepath.Base(filename))
}
