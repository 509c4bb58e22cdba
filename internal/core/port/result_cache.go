package port

import (
	"context"
	"time"
)

// ResultCachePort is an optional read-through cache in front of the
// listing query gateway. A nil port disables caching; cache failures
// must never fail the query.
type ResultCachePort interface {
	// Get unmarshals the cached value into dest and reports whether the
	// key was present.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}
