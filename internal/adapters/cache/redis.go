package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds the Redis connection settings read from the environment.
type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (c Config) addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// NewClient opens a Redis connection and verifies it with a ping before
// handing it out. Callers treat a failed connection as "run without
// caching", so the timeouts stay short.
func NewClient(cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     20,
		MinIdleConns: 4,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.addr(), err)
	}

	return client, nil
}
