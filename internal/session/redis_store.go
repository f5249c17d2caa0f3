// internal/session/redis_store.go
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/database"
	stderrors "github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/errors"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "audit:session:"

// RedisStore keeps sessions in Redis with a TTL, so a multi-instance
// deployment can route a respondent to any instance. Sessions stay
// ephemeral; the TTL is the session lifetime, not durable storage.
type RedisStore struct {
	client *database.RedisClient
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore with the given session TTL.
func NewRedisStore(client *database.RedisClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func redisKey(id string) string {
	return redisKeyPrefix + id
}

func (r *RedisStore) Save(ctx context.Context, s *AuditSession) error {
	if err := r.client.SetJSON(ctx, redisKey(s.ID), s, r.ttl); err != nil {
		return stderrors.NewSessionStoreFailedError(fmt.Errorf("save session %s: %w", s.ID, err))
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*AuditSession, error) {
	var s AuditSession
	err := r.client.GetJSON(ctx, redisKey(id), &s)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, stderrors.NewAuditNotFoundError(id)
		}
		return nil, stderrors.NewSessionStoreFailedError(fmt.Errorf("get session %s: %w", id, err))
	}
	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, redisKey(id)); err != nil {
		return stderrors.NewSessionStoreFailedError(fmt.Errorf("delete session %s: %w", id, err))
	}
	return nil
}
