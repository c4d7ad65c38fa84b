package service

import "context"

// Cache is the invalidating read-through cache the query services use.
// *persistence.Cache satisfies it; a nil field disables caching.
type Cache interface {
	GetJSON(ctx context.Context, key string, v any) bool
	SetJSON(ctx context.Context, key string, v any)
	Invalidate(ctx context.Context, keys ...string)
}
