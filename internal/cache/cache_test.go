package cache

import "testing"

func TestNew(t *testing.T) {
	c := New[rune, int](100)
	if c == nil {
		t.Fatal("New returned nil")
	}
	if c.Limit() != 100 {
		t.Errorf("expected limit 100, got %d", c.Limit())
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}
}

func TestCacheGetPut(t *testing.T) {
	c := New[rune, int](10)

	c.Put('a', 42)

	val, ok := c.Get('a')
	if !ok {
		t.Fatal("expected 'a' to exist")
	}
	if val != 42 {
		t.Errorf("expected 42, got %d", val)
	}

	if _, ok := c.Get('z'); ok {
		t.Error("expected 'z' to not exist")
	}

	c.Put('a', 7)
	if val, _ := c.Get('a'); val != 7 {
		t.Errorf("expected replaced value 7, got %d", val)
	}
	if c.Len() != 1 {
		t.Errorf("replacing must not grow the cache, got %d entries", c.Len())
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[rune, int](10)
	created := 0

	val := c.GetOrCreate('x', func() int {
		created++
		return 100
	})
	if val != 100 {
		t.Errorf("expected 100, got %d", val)
	}

	val = c.GetOrCreate('x', func() int {
		created++
		return 200
	})
	if val != 100 {
		t.Errorf("expected cached 100, got %d", val)
	}
	if created != 1 {
		t.Errorf("expected create called once, got %d", created)
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[rune, int](3)

	c.Put('a', 1)
	c.Put('b', 2)
	c.Put('c', 3)

	// Touch 'a' so 'b' becomes the oldest.
	if _, ok := c.Get('a'); !ok {
		t.Fatal("expected 'a' to exist")
	}

	c.Put('d', 4)

	if c.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", c.Len())
	}
	if _, ok := c.Get('b'); ok {
		t.Error("expected 'b' to be evicted")
	}
	for _, r := range []rune{'a', 'c', 'd'} {
		if _, ok := c.Get(r); !ok {
			t.Errorf("expected %q to survive eviction", r)
		}
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("expected 1 eviction, got %d", got)
	}
}

func TestCacheUnlimited(t *testing.T) {
	c := New[rune, int](0)
	for r := rune(0); r < 1000; r++ {
		c.Put(r, int(r))
	}
	if c.Len() != 1000 {
		t.Errorf("expected 1000 entries, got %d", c.Len())
	}
}

func TestCacheDelete(t *testing.T) {
	c := New[rune, int](10)
	c.Put('a', 1)
	c.Put('b', 2)

	if !c.Delete('a') {
		t.Error("expected Delete to return true for existing key")
	}
	if c.Delete('a') {
		t.Error("expected Delete to return false for missing key")
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}

	// The list must stay consistent after a delete.
	c.Put('c', 3)
	c.Put('d', 4)
	if c.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", c.Len())
	}
}

func TestCacheClear(t *testing.T) {
	c := New[rune, int](10)
	c.Put('a', 1)
	c.Put('b', 2)
	c.Get('a')

	c.Clear()

	if c.Len() != 0 {
		t.Errorf("expected empty cache after Clear, got %d", c.Len())
	}
	if _, ok := c.Get('a'); ok {
		t.Error("expected 'a' to be gone after Clear")
	}
	if c.Stats().Hits != 1 {
		t.Errorf("Clear must keep statistics, hits = %d", c.Stats().Hits)
	}
}

func TestCacheStats(t *testing.T) {
	c := New[rune, int](10)
	c.Put('a', 1)

	c.Get('a')
	c.Get('a')
	c.Get('b')

	stats := c.Stats()
	if stats.Hits != 2 {
		t.Errorf("expected 2 hits, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("expected 1 miss, got %d", stats.Misses)
	}
	want := 2.0 / 3.0
	if stats.HitRate < want-1e-9 || stats.HitRate > want+1e-9 {
		t.Errorf("expected hit rate %f, got %f", want, stats.HitRate)
	}
}
