// Package auth implements the login/logout/current-user flow on top of the
// fleet store and the session manager.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/lebohangkhonkhe/Savezar-taxi/internal/fleet"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/session"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/shared/logger"
	"github.com/lebohangkhonkhe/Savezar-taxi/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	store    storage.Store
	sessions *session.Manager
	log      *logger.Logger
}

func NewService(store storage.Store, sessions *session.Manager, log *logger.Logger) *Service {
	return &Service{store: store, sessions: sessions, log: log}
}

// Login verifies credentials and opens a session. Unknown email and wrong
// password both return fleet.ErrInvalidCredentials so the response does not
// leak which accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (*fleet.User, *session.Session, string, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, fleet.ErrNotFound) {
			s.log.Warn(logger.Entry{
				Action:  "login_unknown_email",
				Message: "login attempt for unknown email",
			})
			return nil, nil, "", fleet.ErrInvalidCredentials
		}
		return nil, nil, "", fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.Warn(logger.Entry{
			Action:  "login_bad_password",
			Message: "login attempt with wrong password",
			Additional: map[string]any{
				"user_id": user.ID,
			},
		})
		return nil, nil, "", fleet.ErrInvalidCredentials
	}

	sess, token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, nil, "", fmt.Errorf("create session: %w", err)
	}

	s.log.Info(logger.Entry{
		Action:  "login_success",
		Message: "user logged in",
		Additional: map[string]any{
			"user_id": user.ID,
		},
	})
	return user, sess, token, nil
}

// CurrentUser resolves the session's user. A session pointing at a deleted
// user counts as unauthenticated.
func (s *Service) CurrentUser(ctx context.Context, userID string) (*fleet.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, fleet.ErrNotFound) {
			return nil, fleet.ErrNotAuthenticated
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}

// Logout destroys the server-side session.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	s.log.Info(logger.Entry{Action: "logout", Message: "session destroyed"})
	return nil
}
