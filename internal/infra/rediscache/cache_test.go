//go:build unit

package rediscache_test

import (
	"context"
	"testing"
	"time"

	"stayfinder/internal/infra/rediscache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Stars int    `json:"stars"`
}

func newTestCache(t *testing.T) (*rediscache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := rediscache.NewWithClient(client, time.Second)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	in := payload{Name: "Royal Azur Thalasso", Stars: 5}
	require.NoError(t, c.Set(ctx, "hotel:1", in, time.Minute))

	var out payload
	hit, err := c.Get(ctx, "hotel:1", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, in, out)
}

func TestCacheMiss(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	var out payload
	hit, err := c.Get(ctx, "hotel:absent", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheDel(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	require.NoError(t, c.Set(ctx, "hotel:1", payload{Name: "Dar Said"}, time.Minute))
	require.NoError(t, c.Del(ctx, "hotel:1"))

	var out payload
	hit, err := c.Get(ctx, "hotel:1", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	require.NoError(t, c.Set(ctx, "hotel:1", payload{Name: "Movenpick"}, time.Minute))
	mr.FastForward(2 * time.Minute)

	var out payload
	hit, err := c.Get(ctx, "hotel:1", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheCorruptValue(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	require.NoError(t, mr.Set("hotel:1", "{not json"))

	var out payload
	_, err := c.Get(ctx, "hotel:1", &out)
	assert.Error(t, err)
}
