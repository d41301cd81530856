package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/quollsoft/taskvault/internal/taskvault/domain"
	"github.com/quollsoft/taskvault/internal/taskvault/store"
	"github.com/quollsoft/taskvault/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("user not authenticated")
)

// AuthService owns the session table and the authorization gate. A session
// binds a caller identity to a username; ownership checks elsewhere use the
// identity, the username is carried for bookkeeping and logging.
type AuthService struct {
	Store store.Store
	Users *UserService
}

// Login verifies the credential and binds the caller's session to the
// username. A failed login leaves any existing session for the identity
// untouched; a successful one silently replaces it.
func (s *AuthService) Login(ctx context.Context, identity domain.Identity, username, credential string) error {
	log := slogx.FromContext(ctx)

	account, err := s.Users.Verify(ctx, username, credential)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			log.Warn("login failed", slog.String("username", username))
		}
		return err
	}

	if err := s.Store.Sessions().StartSession(ctx, identity, account.Username); err != nil {
		return err
	}

	log.Info("session started", slog.String("username", account.Username))
	return nil
}

// Logout removes the caller's session. Fails with ErrNotAuthenticated if
// there is none.
func (s *AuthService) Logout(ctx context.Context, identity domain.Identity) error {
	if err := s.Store.Sessions().EndSession(ctx, identity); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotAuthenticated
		}
		return err
	}

	slogx.FromContext(ctx).Info("session ended")
	return nil
}

// RequireSession is the gate consulted at the start of every task operation.
// It resolves the caller identity to the authenticated username, or reports
// ErrNotAuthenticated.
func (s *AuthService) RequireSession(ctx context.Context, identity domain.Identity) (string, error) {
	username, err := s.Store.Sessions().Resolve(ctx, identity)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrNotAuthenticated
		}
		return "", err
	}
	return username, nil
}
