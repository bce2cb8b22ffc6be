// Package kvstore provides the small key-value store behind the per-page
// AI summary cache. It is injected rather than accessed globally so
// services can be tested against the in-memory implementation.
package kvstore

import "context"

// Store is a flat string key-value store scoped to the application's
// lifetime. Lookups report presence explicitly; implementations treat
// transport errors as a miss.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
	Delete(ctx context.Context, key string)
}
