// Package metadata persists small named values (the client's equivalent of
// browser local storage) in the state DB.
package metadata

import (
	"context"
)

// Repository is a persistent key/value slot store.
//
// Get returns (nil, nil) for an absent key. Delete of an absent key is not
// an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
