package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func TestLRUCache_GetSet(t *testing.T) {
	c := NewLRUCache[int](2, time.Minute)

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", 1)
	c.Set("a", 2)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Size())

	c.Delete("a")
	assert.Equal(t, 0, c.Size())
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	var evicted []string
	c := NewLRUCache[int](2, time.Minute, WithEvictHook(func(key string, _ int) {
		evicted = append(evicted, key)
	}))

	c.Set("a", 1)
	c.Set("b", 2)
	_, _ = c.Get("a")
	c.Set("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, []string{"b"}, evicted)
}

func TestLRUCache_SlidingExpiry(t *testing.T) {
	clock := newClock()
	c := NewLRUCache[string](10, 10*time.Minute, WithClock[string](clock.Now))

	c.Set("sessie", "x")
	clock.Advance(8 * time.Minute)
	_, ok := c.Get("sessie")
	require.True(t, ok)

	// the read above restarted the idle period
	clock.Advance(8 * time.Minute)
	_, ok = c.Get("sessie")
	require.True(t, ok)

	clock.Advance(11 * time.Minute)
	_, ok = c.Get("sessie")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size())
}

func TestLRUCache_CleanExpired(t *testing.T) {
	clock := newClock()
	var evicted int
	c := NewLRUCache[int](10, time.Minute,
		WithClock[int](clock.Now),
		WithEvictHook(func(string, int) { evicted++ }),
	)

	c.Set("old1", 1)
	c.Set("old2", 2)
	clock.Advance(45 * time.Second)
	c.Set("fresh", 3)
	clock.Advance(30 * time.Second)

	assert.Equal(t, 2, c.CleanExpired())
	assert.Equal(t, 1, c.Size())
	assert.Equal(t, 2, evicted)
	assert.Equal(t, 0, c.CleanExpired())
}

func TestManager_CleanNow(t *testing.T) {
	clock := newClock()
	a := NewLRUCache[int](10, time.Minute, WithClock[int](clock.Now))
	b := NewLRUCache[int](10, time.Minute, WithClock[int](clock.Now))
	a.Set("x", 1)
	b.Set("y", 2)
	b.Set("z", 3)
	clock.Advance(2 * time.Minute)

	m := NewManager(nil)
	m.Register(a)
	m.Register(b)
	assert.Equal(t, 3, m.CleanNow())
}

func TestManager_StartStop(t *testing.T) {
	c := NewLRUCache[int](10, time.Nanosecond)
	c.Set("x", 1)

	m := NewManager(nil)
	m.Register(c)
	m.StartCleanup(5 * time.Millisecond)

	assert.Eventually(t, func() bool { return c.Size() == 0 }, time.Second, 5*time.Millisecond)
	m.Stop()
	m.Stop()
}

func TestManager_StopWithoutStart(t *testing.T) {
	m := NewManager(nil)
	assert.NotPanics(t, m.Stop)
}
