package flash

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each toast under its own key with EX = ttl, so expiry is
// handled by Redis.
type RedisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl, prefix: "toast"}
}

func (s *RedisStore) key(owner, id string) string {
	return fmt.Sprintf("%s:%s:%s", s.prefix, owner, id)
}

func (s *RedisStore) Push(ctx context.Context, owner string, level Level, message string) (Toast, error) {
	t := newToast(level, message, time.Now(), s.ttl)
	raw, err := sonic.Marshal(t)
	if err != nil {
		return Toast{}, err
	}
	if err := s.rdb.Set(ctx, s.key(owner, t.ID), raw, s.ttl).Err(); err != nil {
		return Toast{}, err
	}
	return t, nil
}

func (s *RedisStore) List(ctx context.Context, owner string) ([]Toast, error) {
	var keys []string
	iter := s.rdb.Scan(ctx, 0, s.key(owner, "*"), 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}

	vals, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	out := make([]Toast, 0, len(vals))
	for _, v := range vals {
		str, ok := v.(string)
		if !ok {
			continue // expired between SCAN and MGET
		}
		var t Toast
		if err := sonic.UnmarshalString(str, &t); err != nil {
			continue
		}
		out = append(out, t)
	}
	sortByCreated(out)
	return out, nil
}

func (s *RedisStore) Dismiss(ctx context.Context, owner, id string) error {
	return s.rdb.Del(ctx, s.key(owner, id)).Err()
}
