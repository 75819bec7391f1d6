package cache

import (
	"testing"
	"time"
)

func TestLRUCacheEvictsOldest(t *testing.T) {
	c := NewLRUCache[int](2, 0)
	c.Set("a", 1)
	c.Set("b", 2)
	if _, ok := c.Get("a"); !ok { // a becomes most recent
		t.Fatalf("expected a to be cached")
	}
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Fatalf("expected b to be evicted")
	}
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("expected a=1, got %v %v", v, ok)
	}
	if c.Size() != 2 {
		t.Fatalf("expected size 2, got %d", c.Size())
	}
}

func TestLRUCacheNoTTLNeverExpires(t *testing.T) {
	c := NewLRUCache[string](10, 0)
	c.Set("k", "v")
	time.Sleep(5 * time.Millisecond)
	if n := c.CleanExpired(); n != 0 {
		t.Fatalf("expected nothing cleaned, got %d", n)
	}
	if v, ok := c.Get("k"); !ok || v != "v" {
		t.Fatalf("expected k=v, got %q %v", v, ok)
	}
}

func TestLRUCacheTTLExpiry(t *testing.T) {
	c := NewLRUCache[string](10, 20*time.Millisecond)
	c.Set("k", "v")
	time.Sleep(40 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected k to expire")
	}

	c.Set("x", "y")
	time.Sleep(40 * time.Millisecond)
	if n := c.CleanExpired(); n != 1 {
		t.Fatalf("expected 1 cleaned, got %d", n)
	}
}

func TestLRUCacheStatsAndDelete(t *testing.T) {
	c := NewLRUCache[int](4, 0)
	c.Set("a", 1)
	c.Get("a")
	c.Get("missing")
	c.Delete("a")
	c.Get("a")

	hits, misses := c.Stats()
	if hits != 1 || misses != 2 {
		t.Fatalf("expected 1 hit 2 misses, got %d %d", hits, misses)
	}
}
