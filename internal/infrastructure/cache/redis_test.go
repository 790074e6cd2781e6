package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestCompletion(t *testing.T) (*Completion, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewCompletionWithClient(client, time.Minute, nil)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCompletion_SetThenGet(t *testing.T) {
	c, _ := newTestCompletion(t)
	userID := uuid.New()

	if _, hit := c.Get(context.Background(), userID); hit {
		t.Fatal("expected miss before set")
	}

	c.Set(context.Background(), userID, true)
	completed, hit := c.Get(context.Background(), userID)
	if !hit || !completed {
		t.Fatalf("expected (true, hit), got completed=%v hit=%v", completed, hit)
	}

	c.Set(context.Background(), userID, false)
	completed, hit = c.Get(context.Background(), userID)
	if !hit || completed {
		t.Fatalf("expected (false, hit), got completed=%v hit=%v", completed, hit)
	}
}

func TestCompletion_Invalidate(t *testing.T) {
	c, _ := newTestCompletion(t)
	userID := uuid.New()

	c.Set(context.Background(), userID, true)
	c.Invalidate(context.Background(), userID)

	if _, hit := c.Get(context.Background(), userID); hit {
		t.Fatal("expected miss after invalidate")
	}
}

func TestCompletion_TTLExpiry(t *testing.T) {
	c, mr := newTestCompletion(t)
	userID := uuid.New()

	c.Set(context.Background(), userID, true)
	mr.FastForward(2 * time.Minute)

	if _, hit := c.Get(context.Background(), userID); hit {
		t.Fatal("expected miss after TTL expiry")
	}
}

func TestCompletion_BypassedCacheNeverHits(t *testing.T) {
	c := NewCompletionWithClient(nil, time.Minute, nil)
	userID := uuid.New()

	c.Set(context.Background(), userID, true)
	if _, hit := c.Get(context.Background(), userID); hit {
		t.Fatal("bypassed cache must always miss")
	}
	c.Invalidate(context.Background(), userID)

	if err := c.Ping(context.Background()); err == nil {
		t.Fatal("bypassed cache should report unavailable")
	}
}

func TestCompletion_RedisOutageIsMiss(t *testing.T) {
	c, mr := newTestCompletion(t)
	userID := uuid.New()

	c.Set(context.Background(), userID, true)
	mr.Close()

	if _, hit := c.Get(context.Background(), userID); hit {
		t.Fatal("expected miss while redis is down")
	}
}
