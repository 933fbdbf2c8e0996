package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/fleet"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/config"
)

func newTestManager() *Manager {
	return NewManager(NewMemoryStore(), config.SessionConfig{
		Secret:   "test-secret",
		TTLHours: 1,
	}, true)
}

func requestWithCookie(token string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	return r
}

func TestManagerCreateResolve(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	sess, token, err := m.Create(ctx, "u1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	got, err := m.Resolve(ctx, requestWithCookie(token))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.ID != sess.ID || got.UserID != "u1" {
		t.Fatalf("resolved wrong session: %+v", got)
	}
}

func TestManagerResolveNoCookie(t *testing.T) {
	m := newTestManager()
	r := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if _, err := m.Resolve(context.Background(), r); !errors.Is(err, fleet.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestManagerResolveGarbageToken(t *testing.T) {
	m := newTestManager()
	if _, err := m.Resolve(context.Background(), requestWithCookie("not.a.token")); !errors.Is(err, fleet.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestManagerResolveWrongSecret(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	signer := NewManager(store, config.SessionConfig{Secret: "secret-a", TTLHours: 1}, true)
	_, token, err := signer.Create(ctx, "u1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// same backing store, different signing key: the cookie must be rejected
	verifier := NewManager(store, config.SessionConfig{Secret: "secret-b", TTLHours: 1}, true)
	if _, err := verifier.Resolve(ctx, requestWithCookie(token)); !errors.Is(err, fleet.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestManagerDestroy(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	sess, token, err := m.Create(ctx, "u1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := m.Destroy(ctx, sess.ID); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if _, err := m.Resolve(ctx, requestWithCookie(token)); !errors.Is(err, fleet.ErrNotAuthenticated) {
		t.Fatalf("destroyed session still resolves: %v", err)
	}
}

func TestManagerCookieFlags(t *testing.T) {
	m := newTestManager()
	w := httptest.NewRecorder()
	m.WriteCookie(w, "tok", time.Now().Add(time.Hour))

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != CookieName {
		t.Fatalf("cookie name = %q", c.Name)
	}
	if !c.HttpOnly {
		t.Fatal("cookie not HttpOnly")
	}
	if c.SameSite != http.SameSiteLaxMode {
		t.Fatalf("SameSite = %v", c.SameSite)
	}
	// dev mode: Secure off so plain-http local testing works
	if c.Secure {
		t.Fatal("dev-mode cookie should not be Secure")
	}
}

func TestManagerClearCookie(t *testing.T) {
	m := newTestManager()
	w := httptest.NewRecorder()
	m.ClearCookie(w)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge >= 0 {
		t.Fatalf("clear cookie MaxAge = %d, want negative", cookies[0].MaxAge)
	}
}
