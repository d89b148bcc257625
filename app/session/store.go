package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is a redis-backed denylist of revoked token IDs. Tokens stay
// stateless for validation; logout writes the jti here with a TTL equal to
// the token's remaining lifetime, after which the entry expires on its own.
//
// A Store with a nil client is valid and revokes nothing, so the server runs
// without redis.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store { return &Store{rdb: rdb} }

func (s *Store) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if s.rdb == nil || jti == "" || ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, "revoked:"+jti, "1", ttl).Err()
}

func (s *Store) IsRevoked(ctx context.Context, jti string) bool {
	if s.rdb == nil || jti == "" {
		return false
	}
	n, err := s.rdb.Exists(ctx, "revoked:"+jti).Result()
	return err == nil && n > 0
}
