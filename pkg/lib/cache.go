package lib

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type cacheEntry[T any] struct {
	value      T
	expiration time.Time
}

// Cache is a mutex-guarded in-memory cache with a fixed TTL per entry.
type Cache[T any] struct {
	logger  *zerolog.Logger
	entries map[string]cacheEntry[T]
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
}

func NewCache[T any](ttl time.Duration, logger *zerolog.Logger) *Cache[T] {
	return &Cache[T]{
		logger:  logger,
		entries: make(map[string]cacheEntry[T]),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T
	entry, exists := c.entries[key]
	if !exists {
		return zero, false
	}

	if c.now().After(entry.expiration) {
		return zero, false
	}

	c.logger.Trace().
		Str("key", key).
		Msg("cache hit")

	return entry.value, true
}

func (c *Cache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry[T]{
		value:      value,
		expiration: c.now().Add(c.ttl),
	}
}

func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry[T])
}

// HashParams derives a stable cache key from a list of request parameters.
func HashParams(params ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(params, ",")))
	return fmt.Sprintf("%x", hash)
}
