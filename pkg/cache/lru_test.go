package cache_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunahq/luna/pkg/cache"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func TestLRU_Basic(t *testing.T) {
	t.Parallel()

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()
		c := cache.New[string, int](3)
		c.Set("a", 1, 0)
		c.Set("b", 2, 0)

		v, ok := c.Get("a")
		require.True(t, ok)
		assert.Equal(t, 1, v)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		c := cache.New[string, int](1)
		v, ok := c.Get("nope")
		assert.False(t, ok)
		assert.Zero(t, v)
	})

	t.Run("overwrite", func(t *testing.T) {
		t.Parallel()
		c := cache.New[string, int](2)
		c.Set("a", 1, 0)
		c.Set("a", 2, 0)

		v, ok := c.Get("a")
		require.True(t, ok)
		assert.Equal(t, 2, v)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		c := cache.New[string, int](2)
		c.Set("a", 1, 0)
		assert.True(t, c.Delete("a"))
		assert.False(t, c.Delete("a"))
		assert.Zero(t, c.Len())
	})

	t.Run("invalid capacity", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { cache.New[string, int](0) })
	})
}

func TestLRU_Eviction(t *testing.T) {
	t.Parallel()

	var evicted []string
	c := cache.New(2, cache.WithEvictCallback(func(k string, _ int) {
		evicted = append(evicted, k)
	}))

	c.Set("a", 1, 0)
	c.Set("b", 2, 0)
	_, _ = c.Get("a") // b becomes least recently used
	c.Set("c", 3, 0)

	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, []string{"b"}, evicted)

	c.Purge()
	assert.Zero(t, c.Len())
	assert.ElementsMatch(t, []string{"b", "a", "c"}, evicted)
}

func TestLRU_Expiry(t *testing.T) {
	t.Parallel()

	clk := &fakeClock{t: time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)}
	c := cache.New(4, cache.WithClock[string, string](clk.Now))

	c.Set("quote", "stay hungry", time.Hour)
	c.Set("pinned", "forever", 0)

	clk.Advance(59 * time.Minute)
	v, ok := c.Get("quote")
	require.True(t, ok)
	assert.Equal(t, "stay hungry", v)

	clk.Advance(time.Minute)
	_, ok = c.Get("quote")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())

	clk.Advance(24 * time.Hour)
	_, ok = c.Get("pinned")
	assert.True(t, ok)
}

func TestLRU_Concurrent(t *testing.T) {
	t.Parallel()

	c := cache.New[int, int](64)
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := range 100 {
				c.Set(n*100+j, j, time.Minute)
				_, _ = c.Get(n*100 + j)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 64, c.Len())
}
