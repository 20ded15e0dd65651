package cache

import (
	"testing"
	"time"
)

func TestTTLCacheSetGet(t *testing.T) {
	c := NewTTLCache[string, int]()

	c.Set("a", 1, time.Minute)
	if got, ok := c.Get("a"); !ok || got != 1 {
		t.Fatalf("get = %d, %v", got, ok)
	}

	if _, ok := c.Get("missing"); ok {
		t.Fatal("missing key reported a hit")
	}
}

func TestTTLCacheExpiry(t *testing.T) {
	c := NewTTLCache[string, string]()

	c.Set("k", "v", time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expired entry reported a hit")
	}
}

func TestTTLCacheZeroTTLNeverExpires(t *testing.T) {
	c := NewTTLCache[string, string]()

	c.Set("k", "v", 0)
	time.Sleep(2 * time.Millisecond)
	if got, ok := c.Get("k"); !ok || got != "v" {
		t.Fatalf("zero-ttl entry lost: %q, %v", got, ok)
	}
}

func TestTTLCacheDelete(t *testing.T) {
	c := NewTTLCache[string, int]()

	c.Set("k", 7, time.Minute)
	c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Fatal("deleted key reported a hit")
	}
}

func TestNoopCache(t *testing.T) {
	var c NoopCache[string, int]

	c.Set("k", 1, time.Minute)
	if _, ok := c.Get("k"); ok {
		t.Fatal("noop cache should always miss")
	}
}
