package cache

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestMemoryExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }
	ctx := context.Background()

	if err := m.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := m.Get(ctx, "k")
	if err != nil || !ok || string(got) != "v" {
		t.Fatalf("Get = %q, %v, %v", got, ok, err)
	}

	now = now.Add(time.Minute)
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Fatalf("expected entry to expire")
	}
	if m.Len() != 0 {
		t.Fatalf("expired entry not evicted, len=%d", m.Len())
	}
}

func TestMemoryNoTTL(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	_ = m.Set(ctx, "k", []byte("v"), 0)
	m.now = func() time.Time { return time.Now().Add(1000 * time.Hour) }
	if _, ok, _ := m.Get(ctx, "k"); !ok {
		t.Fatalf("entry without ttl should not expire")
	}
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	buf := []byte("abc")
	_ = m.Set(ctx, "k", buf, time.Minute)
	buf[0] = 'x'

	got, _, _ := m.Get(ctx, "k")
	if string(got) != "abc" {
		t.Fatalf("stored value aliased caller buffer: %q", got)
	}
	got[1] = 'y'
	again, _, _ := m.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("returned value aliased cache: %q", again)
	}
}

func TestMemoryCancelledContext(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := m.Set(ctx, "k", nil, 0); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestNewRedisRejectsBadURL(t *testing.T) {
	if _, err := NewRedis(context.Background(), "http://localhost:6379", "exolens:"); err == nil {
		t.Fatalf("expected error for non-redis scheme")
	}
}

func TestMemorySetSweepsExpiredEntries(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 10000; i++ {
		if err := m.Set(ctx, fmt.Sprintf("nasa:search:%d", i), []byte("v"), time.Hour); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	if m.Len() != 10000 {
		t.Fatalf("len = %d", m.Len())
	}

	now = now.Add(48 * time.Hour)
	_ = m.Set(ctx, "fresh", []byte("v"), time.Hour)
	if m.Len() != 1 {
		t.Fatalf("expired entries kept after sweep, len=%d", m.Len())
	}
}

func TestMemorySweepWaitsForInterval(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }
	ctx := context.Background()

	_ = m.Set(ctx, "short", []byte("v"), time.Second)
	now = now.Add(2 * time.Second)
	_ = m.Set(ctx, "other", []byte("v"), time.Hour)
	if m.Len() != 2 {
		t.Fatalf("sweep ran before interval, len=%d", m.Len())
	}

	now = now.Add(sweepInterval)
	_ = m.Set(ctx, "third", []byte("v"), time.Hour)
	if m.Len() != 2 {
		t.Fatalf("len = %d, want expired entry swept", m.Len())
	}
}

func TestMemoryCapEvictsSoonestExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }
	m.maxEntries = 2
	ctx := context.Background()

	_ = m.Set(ctx, "forever", []byte("v"), 0)
	_ = m.Set(ctx, "soon", []byte("v"), time.Minute)
	_ = m.Set(ctx, "later", []byte("v"), time.Hour)

	if m.Len() != 2 {
		t.Fatalf("len = %d, want cap of 2", m.Len())
	}
	if _, ok, _ := m.Get(ctx, "soon"); ok {
		t.Fatal("entry closest to expiry should have been evicted")
	}
	for _, k := range []string{"forever", "later"} {
		if _, ok, _ := m.Get(ctx, k); !ok {
			t.Fatalf("%s evicted", k)
		}
	}
}
