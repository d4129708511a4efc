package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "mersal:session:"
	sendLockSuffix   = ":sending"

	// sendLockTTL caps how long a crashed send can hold the lock.
	sendLockTTL = 10 * time.Minute
)

// RedisStore keeps sessions in Redis as JSON blobs with a TTL, so
// pipeline state survives server restarts and multiple instances can
// serve the same user.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(id string) string { return sessionKeyPrefix + id }
func sendLockKey(id string) string { return sessionKeyPrefix + id + sendLockSuffix }

func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(s.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	// The in-flight flag lives in the lock key, not the blob.
	locked, err := r.client.Exists(ctx, sendLockKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("check send lock: %w", err)
	}
	s.Sending = locked > 0
	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id), sendLockKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// BeginSend takes the per-session send lock. SETNX makes the
// arbitration atomic across server instances.
func (r *RedisStore) BeginSend(ctx context.Context, id string) error {
	exists, err := r.client.Exists(ctx, sessionKey(id)).Result()
	if err != nil {
		return fmt.Errorf("check session: %w", err)
	}
	if exists == 0 {
		return ErrNotFound
	}

	ok, err := r.client.SetNX(ctx, sendLockKey(id), "1", sendLockTTL).Result()
	if err != nil {
		return fmt.Errorf("acquire send lock: %w", err)
	}
	if !ok {
		return ErrSendInFlight
	}
	return nil
}

func (r *RedisStore) EndSend(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sendLockKey(id)).Err(); err != nil {
		return fmt.Errorf("release send lock: %w", err)
	}
	return nil
}
