package auth

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/fleet"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/session"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/config"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/logger"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*Service, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	log := logger.NewLoggerWithWriter("auth-test", io.Discard)
	sessions := session.NewManager(session.NewMemoryStore(), config.SessionConfig{
		Secret:   "test-secret",
		TTLHours: 1,
	}, true)
	return NewService(store, sessions, log), store
}

func registerUser(t *testing.T, store *storage.MemoryStore, email, password string) *fleet.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u, err := store.CreateUser(context.Background(), fleet.InsertUser{
		Email:    email,
		Password: string(hash),
		Name:     "Test User",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func TestLoginSuccess(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	registerUser(t, store, "ops@savezar.com", "secret")

	user, sess, token, err := svc.Login(ctx, "ops@savezar.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Email != "ops@savezar.com" {
		t.Fatalf("email = %q", user.Email)
	}
	if sess == nil || sess.UserID != user.ID {
		t.Fatalf("session not bound to user: %+v", sess)
	}
	if token == "" {
		t.Fatal("empty token")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, store := newTestService(t)
	registerUser(t, store, "ops@savezar.com", "secret")

	_, _, _, err := svc.Login(context.Background(), "ops@savezar.com", "wrong")
	if !errors.Is(err, fleet.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, _, err := svc.Login(context.Background(), "nobody@savezar.com", "secret")
	if !errors.Is(err, fleet.ErrInvalidCredentials) {
		t.Fatalf("unknown email must look like bad credentials, got %v", err)
	}
}

func TestCurrentUserDeletedAccount(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	u := registerUser(t, store, "ops@savezar.com", "secret")

	if _, err := store.DeleteUser(ctx, u.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	_, err := svc.CurrentUser(ctx, u.ID)
	if !errors.Is(err, fleet.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated for deleted user, got %v", err)
	}
}

func TestSeededAdminCanLogin(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	if err := store.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	user, _, _, err := svc.Login(ctx, storage.SeedAdminEmail, storage.SeedAdminPassword)
	if err != nil {
		t.Fatalf("seeded admin login: %v", err)
	}
	if user.Name != storage.SeedAdminName {
		t.Fatalf("name = %q", user.Name)
	}
}
