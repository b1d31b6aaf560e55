// Package common defines shared constants and sentinel errors used across
// the storefront client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Remote API errors.
	ErrorNotFound     = errors.New("not found")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorInternal     = errors.New("internal error")

	// Thumbnail upload is a separate phase that precedes the product
	// submit; its failure must be distinguishable from an API failure.
	ErrUploadFailed = errors.New("upload failed")
)
