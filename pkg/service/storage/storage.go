// Package storage holds uploaded document bytes. Records in the repository
// carry metadata only; the raw content lives here, keyed by document ID.
package storage

import "context"

// Service is a minimal blob store. Keys are opaque; the document usecase
// uses the document ID.
type Service interface {
	// Put stores data under key, overwriting any previous content.
	Put(ctx context.Context, key string, data []byte, contentType string) error
	// Get returns the stored bytes, or a not-found tagged error.
	Get(ctx context.Context, key string) ([]byte, error)
	// Delete removes the stored bytes. Deleting a missing key is an error.
	Delete(ctx context.Context, key string) error
}
