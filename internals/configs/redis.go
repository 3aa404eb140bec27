package configs

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when REDIS_ADDR is empty or unreachable; callers
// fall back to in-process storage.
func ConnectRedis() *redis.Client {
	if RedisAddr == "" {
		log.Println("[INFO] REDIS_ADDR not set, toasts are kept in memory")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     RedisAddr,
		Password: GetEnv("REDIS_PASSWORD"),
		DB:       GetEnvInt("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[WARN] Redis ping failed (%v), toasts are kept in memory", err)
		_ = rdb.Close()
		return nil
	}

	log.Println("[INFO] Redis connected")
	return rdb
}
