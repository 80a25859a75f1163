package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when no fresh response is cached for a key.
var ErrCacheMiss = errors.New("cache miss")

// ResponseCache holds rendered response bodies for the duration of their
// cache-control window, so repeat requests inside the window never reach
// the upstreams.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
}

const responseKeyPrefix = "response:"

type RedisResponseCache struct {
	client *redis.Client
}

var _ ResponseCache = (*RedisResponseCache)(nil)

func NewRedisResponseCache(client *redis.Client) *RedisResponseCache {
	return &RedisResponseCache{client: client}
}

func (c *RedisResponseCache) Get(ctx context.Context, key string) ([]byte, error) {
	body, err := c.client.Get(ctx, responseKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *RedisResponseCache) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	return c.client.Set(ctx, responseKeyPrefix+key, body, ttl).Err()
}

type responseCacheEntry struct {
	body      []byte
	expiresAt time.Time
}

type MemoryResponseCache struct {
	mu      sync.RWMutex
	entries map[string]responseCacheEntry

	done     chan struct{}
	interval time.Duration
}

var _ ResponseCache = (*MemoryResponseCache)(nil)

func NewMemoryResponseCache(cleanupInterval time.Duration) *MemoryResponseCache {
	c := &MemoryResponseCache{
		entries:  make(map[string]responseCacheEntry),
		done:     make(chan struct{}),
		interval: cleanupInterval,
	}
	go c.cleanupLoop()
	return c
}

func (c *MemoryResponseCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, ErrCacheMiss
	}
	return entry.body, nil
}

func (c *MemoryResponseCache) Set(_ context.Context, key string, body []byte, ttl time.Duration) error {
	c.mu.Lock()
	c.entries[key] = responseCacheEntry{
		body:      body,
		expiresAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()
	return nil
}

func (c *MemoryResponseCache) cleanupLoop() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.done:
			return
		}
	}
}

func (c *MemoryResponseCache) cleanup() {
	now := time.Now()
	c.mu.Lock()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}

func (c *MemoryResponseCache) Close() error {
	close(c.done)
	return nil
}
