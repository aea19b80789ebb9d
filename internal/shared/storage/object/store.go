package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for staging uploaded documents on disk.
type ObjectStore interface {
	Save(ctx context.Context, namespace string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	// Path resolves a storage key to a filesystem path readers can open directly.
	Path(storageKey string) (string, error)
	// Remove deletes everything stored under the key's namespace.
	Remove(ctx context.Context, storageKey string) error
}
