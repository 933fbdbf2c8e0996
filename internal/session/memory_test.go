package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/fleet"
)

func TestMemoryStorePutGet(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	s := Session{ID: "s1", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}
	if err := m.Put(ctx, s); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := m.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserID != "u1" {
		t.Fatalf("userId = %q", got.UserID)
	}
}

func TestMemoryStoreMissing(t *testing.T) {
	m := NewMemoryStore()
	if _, err := m.Get(context.Background(), "nope"); !errors.Is(err, fleet.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreExpired(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	s := Session{ID: "s1", UserID: "u1", ExpiresAt: time.Now().Add(-time.Minute)}
	if err := m.Put(ctx, s); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := m.Get(ctx, "s1"); !errors.Is(err, fleet.ErrNotFound) {
		t.Fatalf("expired session should read as missing, got %v", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	s := Session{ID: "s1", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}
	if err := m.Put(ctx, s); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := m.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := m.Get(ctx, "s1"); !errors.Is(err, fleet.ErrNotFound) {
		t.Fatalf("deleted session still readable: %v", err)
	}

	// deleting again is fine
	if err := m.Delete(ctx, "s1"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}
