package cache

import (
	"sync"
	"testing"
	"time"
)

func TestSetAndGet(t *testing.T) {
	c := New()

	c.Set("key", "value", time.Minute)
	if got := c.Get("key"); got != "value" {
		t.Errorf("Get = %v, want %q", got, "value")
	}
	if got := c.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
}

func TestExpiry(t *testing.T) {
	now := time.Now()
	c := New()
	c.now = func() time.Time { return now }

	c.Set("key", 42, 5*time.Minute)

	now = now.Add(5 * time.Minute)
	if got := c.Get("key"); got != 42 {
		t.Errorf("Get at exact TTL = %v, want 42", got)
	}

	now = now.Add(time.Second)
	if got := c.Get("key"); got != nil {
		t.Errorf("Get past TTL = %v, want nil", got)
	}
}

func TestExpiredEntryEvicted(t *testing.T) {
	now := time.Now()
	c := New()
	c.now = func() time.Time { return now }

	c.Set("key", "value", time.Minute)
	now = now.Add(2 * time.Minute)

	c.Get("key")

	c.mu.RLock()
	_, present := c.entries["key"]
	c.mu.RUnlock()
	if present {
		t.Error("expired entry still present after Get")
	}
}

func TestOverwriteResetsTTL(t *testing.T) {
	now := time.Now()
	c := New()
	c.now = func() time.Time { return now }

	c.Set("key", "old", time.Minute)
	now = now.Add(50 * time.Second)
	c.Set("key", "new", time.Minute)
	now = now.Add(30 * time.Second)

	if got := c.Get("key"); got != "new" {
		t.Errorf("Get = %v, want %q", got, "new")
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)

	c.Clear()

	if c.Get("a") != nil || c.Get("b") != nil {
		t.Error("entries survived Clear")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Set("shared", "value", time.Minute)
		}()
		go func() {
			defer wg.Done()
			c.Get("shared")
		}()
	}
	wg.Wait()

	if got := c.Get("shared"); got != "value" {
		t.Errorf("Get after concurrent access = %v, want %q", got, "value")
	}
}
