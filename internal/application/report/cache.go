package report

import (
	"context"
	"time"
)

// SummaryCache stores serialized closed-period summaries. Implemented
// by the Redis cache in infrastructure and by an in-memory cache for
// tests. A miss is (nil, nil).
type SummaryCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
