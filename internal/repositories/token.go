package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-budget-stats/internal/logger"
)

// TokenDenylistRepository keeps revoked token IDs in Redis until they expire
type TokenDenylistRepository struct {
	client *redis.Client
}

// NewTokenDenylistRepository creates a new repository instance
func NewTokenDenylistRepository(client *redis.Client) *TokenDenylistRepository {
	return &TokenDenylistRepository{client: client}
}

func tokenKey(tokenID string) string {
	return fmt.Sprintf("revoked_token:%s", tokenID)
}

// Revoke marks tokenID as revoked for ttl. A non-positive ttl is a no-op
// because the token has already expired.
func (r *TokenDenylistRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	key := tokenKey(tokenID)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow("token revoked",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether tokenID has been revoked.
func (r *TokenDenylistRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := tokenKey(tokenID)
	n, err := r.client.Exists(ctx, key).Result()

	logger.Log.Infow("token revocation checked",
		"key", key,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}
