package memcache

import (
	"testing"
	"time"
)

func TestSetGet(t *testing.T) {
	c := NewCatalogCache(time.Minute)
	c.Set("treks", "published", []string{"ebc", "annapurna"})

	v, ok := c.Get("treks", "published")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(v.([]string)) != 2 {
		t.Errorf("unexpected cached value %v", v)
	}

	if _, ok := c.Get("treks", "featured"); ok {
		t.Error("unexpected hit for different query")
	}
}

func TestExpiry(t *testing.T) {
	c := NewCatalogCache(10 * time.Millisecond)
	c.Set("faqs", "all", "value")

	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("faqs", "all"); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestInvalidateScopedToEntity(t *testing.T) {
	c := NewCatalogCache(time.Minute)
	c.Set("treks", "published", 1)
	c.Set("treks", "featured", 2)
	c.Set("posts", "published", 3)

	c.Invalidate("treks")

	if _, ok := c.Get("treks", "published"); ok {
		t.Error("treks/published should be invalidated")
	}
	if _, ok := c.Get("treks", "featured"); ok {
		t.Error("treks/featured should be invalidated")
	}
	if _, ok := c.Get("posts", "published"); !ok {
		t.Error("posts cache should survive trek invalidation")
	}
}

func TestSubscribeNotified(t *testing.T) {
	c := NewCatalogCache(time.Minute)

	var notified []string
	c.Subscribe("treks", func(entity string) {
		notified = append(notified, entity)
	})

	c.Invalidate("treks")
	c.Invalidate("posts")

	if len(notified) != 1 || notified[0] != "treks" {
		t.Errorf("notifications = %v, want exactly one for treks", notified)
	}
}

func TestSubscribeAnyEntity(t *testing.T) {
	c := NewCatalogCache(time.Minute)

	var notified []string
	c.Subscribe(AnyEntity, func(entity string) {
		notified = append(notified, entity)
	})

	c.Invalidate("treks")
	c.Invalidate("posts")

	if len(notified) != 2 || notified[0] != "treks" || notified[1] != "posts" {
		t.Errorf("notifications = %v, want one per invalidated entity", notified)
	}
}
