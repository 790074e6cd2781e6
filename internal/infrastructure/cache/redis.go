package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"job-assist/internal/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const completionKeyPrefix = "profile:completed:"

// Completion caches the per-user profile_completed flag so the route gate does
// not hit the store on every page request. When Redis is unreachable the cache
// bypasses itself: every read is a miss and writes are dropped.
type Completion struct {
	client *redis.Client
	logger *log.Logger
	ttl    time.Duration

	warnedUnavailable atomic.Bool
}

func NewCompletion(cfg config.RedisConfig, logger *log.Logger) *Completion {
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "localhost"
	}
	port := strings.TrimSpace(cfg.Port)
	if port == "" {
		port = "6379"
	}

	ttl := cfg.CompletionTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: strings.TrimSpace(cfg.Password),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Printf("[Cache] Redis unavailable, bypassing cache: %v", err)
		}
		_ = client.Close()
		return &Completion{client: nil, logger: logger, ttl: ttl}
	}

	return &Completion{client: client, logger: logger, ttl: ttl}
}

// NewCompletionWithClient wires an existing client; used by tests.
func NewCompletionWithClient(client *redis.Client, ttl time.Duration, logger *log.Logger) *Completion {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Completion{client: client, logger: logger, ttl: ttl}
}

func (c *Completion) isUnavailable() bool {
	return c == nil || c.client == nil
}

func (c *Completion) warnUnavailableOnce(err error) {
	if c == nil || c.logger == nil {
		return
	}
	if c.warnedUnavailable.CompareAndSwap(false, true) {
		c.logger.Printf("[Cache] Redis unavailable, bypassing cache: %v", err)
	}
}

// Get reports (completed, hit). A bypassed or failing cache is always a miss.
func (c *Completion) Get(ctx context.Context, userID uuid.UUID) (bool, bool) {
	if c.isUnavailable() {
		return false, false
	}

	v, err := c.client.Get(ctx, completionKey(userID)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.warnUnavailableOnce(err)
		}
		return false, false
	}
	return v == "1", true
}

func (c *Completion) Set(ctx context.Context, userID uuid.UUID, completed bool) {
	if c.isUnavailable() {
		return
	}

	v := "0"
	if completed {
		v = "1"
	}
	if err := c.client.Set(ctx, completionKey(userID), v, c.ttl).Err(); err != nil {
		c.warnUnavailableOnce(err)
	}
}

// Invalidate drops the cached flag; the next gate lookup falls through to the
// store.
func (c *Completion) Invalidate(ctx context.Context, userID uuid.UUID) {
	if c.isUnavailable() {
		return
	}
	if err := c.client.Del(ctx, completionKey(userID)).Err(); err != nil {
		c.warnUnavailableOnce(err)
	}
}

func (c *Completion) Ping(ctx context.Context) error {
	if c.isUnavailable() {
		return errors.New("redis unavailable")
	}
	return c.client.Ping(ctx).Err()
}

func (c *Completion) Close() error {
	if c.isUnavailable() {
		return nil
	}
	return c.client.Close()
}

func completionKey(userID uuid.UUID) string {
	return completionKeyPrefix + userID.String()
}
