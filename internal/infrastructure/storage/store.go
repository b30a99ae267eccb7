// internal/infrastructure/storage/store.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Read when no document is stored under the key
var ErrNotFound = errors.New("document not found")

// Doc names a logical document kept per session
type Doc string

const (
	DocCart     Doc = "cart"
	DocOrders   Doc = "orders"
	DocWishlist Doc = "wishlist"
	DocUser     Doc = "user"
)

// Store is a durable key-value collaborator holding raw JSON documents.
// Implementations must be safe for concurrent use; they do not provide
// read-modify-write isolation.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
}

// Key builds the storage key of a session's document
func Key(sessionID string, doc Doc) string {
	return fmt.Sprintf("session:%s:%s", sessionID, doc)
}

// DocOf extracts the document name from a key built by Key
func DocOf(key string) Doc {
	if i := strings.LastIndex(key, ":"); i >= 0 {
		return Doc(key[i+1:])
	}
	return Doc(key)
}
