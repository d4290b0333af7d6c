// Package records persists raw key/value records in the local database.
package records

import "context"

// Repository is the raw byte-level record store. Get returns (nil, nil)
// when the key has never been written.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Keys(ctx context.Context) ([]string, error)
}
