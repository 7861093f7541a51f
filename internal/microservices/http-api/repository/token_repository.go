package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevokedTokenRepository remembers signed-out token ids until they expire.
type RevokedTokenRepository interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type revokedTokenRepository struct {
	client *redis.Client
}

// NewRevokedTokenRepository wraps client. A nil client yields a repository
// that revokes nothing, for deployments without Redis.
func NewRevokedTokenRepository(client *redis.Client) RevokedTokenRepository {
	return &revokedTokenRepository{client: client}
}

// NewRedisClient connects to addr and verifies the connection
func NewRedisClient(addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return rdb, nil
}

func revokedKey(tokenID string) string {
	return "auth:revoked:" + tokenID
}

func (r *revokedTokenRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if r == nil || r.client == nil {
		// No-op without Redis
		return nil
	}
	if ttl <= 0 {
		// already expired, nothing to remember
		return nil
	}
	return r.client.Set(ctx, revokedKey(tokenID), 1, ttl).Err()
}

func (r *revokedTokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if r == nil || r.client == nil {
		return false, nil
	}
	n, err := r.client.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
