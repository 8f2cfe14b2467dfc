//go:build !integration

package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VirusAlex/CashCleanerSimulator/internal/domain/model"
)

func cachedResult(amount int64) model.OptimizeResult {
	return model.OptimizeResult{Amount: amount, Currency: "USD", Feasible: true, Variants: []model.Variant{}}
}

func TestTTLCache_SetAndGet(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set("key", cachedResult(1000))

	got, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, int64(1000), got.Amount)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestTTLCache_Expiry(t *testing.T) {
	c := newTTLCache(10, 10*time.Millisecond)
	defer c.Stop()

	c.Set("key", cachedResult(1000))
	time.Sleep(25 * time.Millisecond)

	_, ok := c.Get("key")
	assert.False(t, ok)
}

func TestTTLCache_LRUEviction(t *testing.T) {
	c := newTTLCache(2, time.Minute)
	defer c.Stop()

	c.Set("a", cachedResult(1))
	c.Set("b", cachedResult(2))

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("c", cachedResult(3))

	_, ok = c.Get("b")
	assert.False(t, ok, "least recently used entry should be evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestTTLCache_UpdateExistingKey(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set("key", cachedResult(1))
	c.Set("key", cachedResult(2))

	got, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, int64(2), got.Amount)
	assert.Equal(t, 1, c.Metrics().Size)
}

func TestTTLCache_Invalidate(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set("key", cachedResult(1))
	c.Invalidate("key")

	_, ok := c.Get("key")
	assert.False(t, ok)

	// Invalidating a missing key is a no-op
	c.Invalidate("missing")
}

func TestTTLCache_Clear(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("key-%d", i), cachedResult(int64(i)))
	}
	c.Clear()

	m := c.Metrics()
	assert.Zero(t, m.Size)
	assert.Zero(t, m.Hits)

	_, ok := c.Get("key-0")
	assert.False(t, ok)
}

func TestTTLCache_Metrics(t *testing.T) {
	c := newTTLCache(2, time.Minute)
	defer c.Stop()

	c.Set("a", cachedResult(1))
	c.Get("a")
	c.Get("a")
	c.Get("missing")
	c.Set("b", cachedResult(2))
	c.Set("c", cachedResult(3)) // evicts

	m := c.Metrics()
	assert.Equal(t, int64(2), m.Hits)
	assert.GreaterOrEqual(t, m.Misses, int64(1))
	assert.Equal(t, int64(1), m.Evictions)
	assert.Equal(t, 2, m.Size)
	assert.Equal(t, 2, m.Capacity)
}

func TestTTLCache_ConcurrentAccess(t *testing.T) {
	c := newTTLCache(100, time.Minute)
	defer c.Stop()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 200; j++ {
				key := fmt.Sprintf("key-%d", j%20)
				c.Set(key, cachedResult(int64(j)))
				c.Get(key)
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
