package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestRedisClient_Integration(t *testing.T) {
	_ = godotenv.Load("../../../.env")

	host := getEnv("REDIS_HOST", "localhost")
	port := getEnv("REDIS_PORT", "6379")
	pass := os.Getenv("REDIS_PASSWORD")

	rdb, err := NewClient(Config{Host: host, Port: port, Password: pass, DB: 1})
	if err != nil {
		t.Skipf("Skipping Redis integration test: %v", err)
	}
	defer rdb.Close()

	ctx := context.Background()

	require.NoError(t, rdb.FlushDB(ctx).Err(), "Failed to flush test DB")

	t.Run("Connection Ping", func(t *testing.T) {
		pong, err := rdb.Ping(ctx).Result()
		assert.NoError(t, err)
		assert.Equal(t, "PONG", pong)
	})

	t.Run("Set and Get Value", func(t *testing.T) {
		require.NoError(t, rdb.Set(ctx, "habits:test", "cached", 1*time.Minute).Err())

		val, err := rdb.Get(ctx, "habits:test").Result()
		assert.NoError(t, err)
		assert.Equal(t, "cached", val)

		rdb.Del(ctx, "habits:test")
	})

	t.Run("Expire Check", func(t *testing.T) {
		require.NoError(t, rdb.Set(ctx, "habits:expire", "expire_me", 1*time.Second).Err())

		time.Sleep(1100 * time.Millisecond)

		_, err := rdb.Get(ctx, "habits:expire").Result()
		assert.ErrorIs(t, err, redis.Nil)
	})
}
