// Package storage is the blob relay for article images. The service layer
// treats it as an external collaborator: uploads happen before the article
// row is written, deletions are best-effort and never block entity writes.
package storage

import (
	"context"
	"io"
)

// BlobStore stores and removes article image blobs
type BlobStore interface {
	// Save writes the blob and returns the public URL to store on the entity.
	Save(ctx context.Context, ext string, r io.Reader) (string, error)
	// Exists reports whether the blob behind the URL is still present.
	Exists(ctx context.Context, url string) bool
	// Delete removes the blob behind a previously returned URL.
	Delete(ctx context.Context, url string) error
}
