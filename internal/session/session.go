// Package session keeps authentication state server-side, keyed by an
// opaque session id. The client only ever holds a signed cookie carrying
// that id.
package session

import (
	"context"
	"time"
)

// Session associates a cookie token with a logged-in user.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Store persists sessions. Get must treat an expired session exactly like
// a missing one and return fleet.ErrNotFound.
type Store interface {
	Put(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
