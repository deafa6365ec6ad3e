package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewQueryCache_DefaultTTL(t *testing.T) {
	c := NewQueryCache(nil, 0)
	if c.ttl != defaultCacheTTL {
		t.Fatalf("expected default ttl %s, got %s", defaultCacheTTL, c.ttl)
	}

	c = NewQueryCache(nil, time.Minute)
	if c.ttl != time.Minute {
		t.Fatalf("expected ttl 1m, got %s", c.ttl)
	}
}

func TestQueryCache_GetReportsBackendError(t *testing.T) {
	c := NewQueryCache(unreachableClient(t), time.Minute)

	var dst []string
	hit, err := c.Get(context.Background(), "query:people", &dst)
	if err == nil {
		t.Fatal("expected error from unreachable redis")
	}
	if hit {
		t.Fatal("a failed lookup must not report a hit")
	}
}

func TestQueryCache_InvalidateWithoutKeysIsNoop(t *testing.T) {
	c := NewQueryCache(unreachableClient(t), time.Minute)

	if err := c.Invalidate(context.Background()); err != nil {
		t.Fatalf("expected no round trip for empty key list, got %v", err)
	}
}

func TestQueryCache_SetRejectsUnencodableValue(t *testing.T) {
	c := NewQueryCache(unreachableClient(t), time.Minute)

	if err := c.Set(context.Background(), "k", make(chan int), 0); err == nil {
		t.Fatal("expected encode error")
	}
}

func TestQueryCache_GenerationReportsBackendError(t *testing.T) {
	c := NewQueryCache(unreachableClient(t), time.Minute)

	if _, err := c.Generation(context.Background()); err == nil {
		t.Fatal("expected error from unreachable redis")
	}
}

func TestQueryCache_SetReportsBackendError(t *testing.T) {
	c := NewQueryCache(unreachableClient(t), time.Minute)

	err := c.Set(context.Background(), "query:people", []string{"a"}, 0)
	if err == nil {
		t.Fatal("expected error from unreachable redis")
	}
	if errors.Is(err, errStaleGeneration) {
		t.Fatal("a backend failure must not be reported as a stale generation")
	}
}

func TestNopCache_AlwaysMisses(t *testing.T) {
	var c NopCache
	ctx := context.Background()

	if err := c.Set(ctx, "k", []int{1}, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	var dst []int
	hit, err := c.Get(ctx, "k", &dst)
	if err != nil || hit {
		t.Fatalf("expected miss, got hit=%v err=%v", hit, err)
	}
}
