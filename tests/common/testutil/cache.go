package testutil

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// MemCache is a map-backed stand-in for the Redis cache; TTLs are ignored.
type MemCache struct {
	mu   sync.Mutex
	data map[string][]byte

	Hits   int
	Misses int
	Dels   int
}

func NewMemCache() *MemCache {
	return &MemCache{data: map[string][]byte{}}
}

func (c *MemCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.data[key]
	if !ok {
		c.Misses++
		return false, nil
	}
	c.Hits++
	return true, json.Unmarshal(b, dst)
}

func (c *MemCache) Set(_ context.Context, key string, v any, _ time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	return nil
}

func (c *MemCache) Del(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Dels++
	delete(c.data, key)
	return nil
}

func (c *MemCache) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}
