// Package services holds the application services of the SiteKeeper console:
// the identity directory, the session/role state with its collections, the
// audit helper and the field shift tracker.
package services

import "context"

// RecordStore is the persistence the services need. *store.Store implements it.
type RecordStore interface {
	Read(ctx context.Context, key string, dst any) (bool, error)
	Write(ctx context.Context, key string, value any) error
	WriteAll(ctx context.Context, values map[string]any) error
}
