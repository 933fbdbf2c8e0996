package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/fleet"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/config"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/utils"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie the client carries.
const CookieName = "savezar_session"

// Manager creates and resolves sessions. The cookie value is an
// HS256-signed token whose jti is the server-side session id, so a cookie
// cannot be forged and a stolen one dies with its server-side session.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewManager(store Store, cfg config.SessionConfig, devMode bool) *Manager {
	ttl := time.Duration(cfg.TTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{
		store:  store,
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		secure: !devMode,
	}
}

// Create opens a session for userID and returns it with the signed cookie
// token.
func (m *Manager) Create(ctx context.Context, userID string) (*Session, string, error) {
	now := time.Now()
	s := Session{
		ID:        utils.NewUUID(),
		UserID:    userID,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Put(ctx, s); err != nil {
		return nil, "", fmt.Errorf("persist session: %w", err)
	}

	claims := jwt.RegisteredClaims{
		ID:        s.ID,
		Issuer:    "savezar",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, "", fmt.Errorf("sign session token: %w", err)
	}
	return &s, token, nil
}

// Resolve validates the cookie on r and loads its session. Any failure,
// from a missing cookie to an expired server-side session, collapses to
// fleet.ErrNotAuthenticated.
func (m *Manager) Resolve(ctx context.Context, r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, fleet.ErrNotAuthenticated
	}

	id, err := m.parseToken(cookie.Value)
	if err != nil {
		return nil, fleet.ErrNotAuthenticated
	}

	s, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, fleet.ErrNotAuthenticated
	}
	return s, nil
}

// Destroy removes the server-side session.
func (m *Manager) Destroy(ctx context.Context, id string) error {
	return m.store.Delete(ctx, id)
}

func (m *Manager) parseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.ID == "" {
		return "", fmt.Errorf("invalid claims")
	}
	return claims.ID, nil
}

// WriteCookie attaches the session cookie to the response.
func (m *Manager) WriteCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie on the client.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
