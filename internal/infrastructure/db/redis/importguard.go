package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const importKeyTTL = 24 * time.Hour

// ImportGuard provides replay protection for bulk imports, backed by Redis.
// Key format: import:<idempotency_key>
type ImportGuard struct {
	client *redis.Client
}

// NewImportGuard creates an ImportGuard wrapping the given Redis client.
func NewImportGuard(client *redis.Client) *ImportGuard {
	return &ImportGuard{client: client}
}

// Seen reports whether this import key was already consumed.
func (g *ImportGuard) Seen(ctx context.Context, key string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("import guard check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this import key has been consumed (expires after importKeyTTL).
func (g *ImportGuard) Mark(ctx context.Context, key string) error {
	return g.client.Set(ctx, g.key(key), "1", importKeyTTL).Err()
}

func (g *ImportGuard) key(key string) string {
	return "import:" + key
}
