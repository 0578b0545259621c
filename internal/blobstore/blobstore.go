// Package blobstore abstracts where uploaded media bytes live. The rest of
// the application only ever sees the opaque key returned by Save and the URL
// resolved from it.
package blobstore

import (
	"context"
	"io"
)

// Store is the media blob facility. Save streams the object and returns its
// opaque key; URL resolves a previously returned key to something a client
// can fetch. Delete removes the object and is used to avoid orphaned blobs
// when a later step of an upload fails.
type Store interface {
	Save(ctx context.Context, name string, data io.Reader) (key string, err error)
	URL(key string) string
	Delete(ctx context.Context, key string) error
}
