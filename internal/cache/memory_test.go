package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, ok, _ := m.Get(ctx, "missing"); ok {
		t.Fatalf("expected miss for unknown key")
	}

	if err := m.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, ok, err := m.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(val) != "v" {
		t.Fatalf("val=%q want v", val)
	}
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory()
	now := time.Unix(1000, 0)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	if err := m.Set(ctx, "k", []byte("v"), 30*time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok, _ := m.Get(ctx, "k"); !ok {
		t.Fatalf("expected hit before expiry")
	}

	now = now.Add(31 * time.Second)
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Fatalf("expected miss after expiry")
	}
}

func TestMemoryZeroTTLIsNoop(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	if err := m.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Fatalf("zero ttl must not store")
	}
}
