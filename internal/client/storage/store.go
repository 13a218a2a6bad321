// Package storage covers the blob side of the backend: uploading
// certificate images to an S3-compatible store and resolving the public
// URLs they are served from.
package storage

import "context"

// Store is the content-addressed blob store as seen by the controllers.
type Store interface {
	// Upload stores data under the given key with the given content type.
	Upload(ctx context.Context, key string, data []byte, contentType string) error

	// ResolvePublicURL returns the publicly resolvable URL for a stored key.
	ResolvePublicURL(key string) string
}
