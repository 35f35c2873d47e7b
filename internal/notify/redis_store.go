package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore implementa Store sobre una lista por tenant con expiración.
// Se usa cuando hay más de una instancia del API detrás del balanceador.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) key(tenantID uint) string {
	return fmt.Sprintf("notifications:%d", tenantID)
}

func (s *RedisStore) Append(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	key := s.key(ev.TenantID)
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.Expire(ctx, key, s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Pending(ctx context.Context, tenantID uint) ([]Event, error) {
	items, err := s.client.LRange(ctx, s.key(tenantID), 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}

	out := make([]Event, 0, len(items))
	for _, item := range items {
		var ev Event
		if err := json.Unmarshal([]byte(item), &ev); err != nil {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

func (s *RedisStore) MarkRead(ctx context.Context, tenantID uint) error {
	return s.client.Del(ctx, s.key(tenantID)).Err()
}
