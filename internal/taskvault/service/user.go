package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/quollsoft/taskvault/internal/taskvault/domain"
	"github.com/quollsoft/taskvault/internal/taskvault/store"
	"github.com/quollsoft/taskvault/pkg/cryptox"
	"github.com/quollsoft/taskvault/pkg/slogx"
)

var ErrDuplicateUsername = errors.New("username already exists")

// UserService is the user registry. Registration is the only write path;
// accounts are never updated or deleted.
type UserService struct {
	Store  store.Store
	Scheme cryptox.Scheme
}

// Register creates a new account. It does not log the caller in.
func (s *UserService) Register(ctx context.Context, username, credential string) error {
	log := slogx.FromContext(ctx)

	encoded, err := s.Scheme.Encode(credential)
	if err != nil {
		log.Error("failed to encode credential", slog.Any("error", err))
		return err
	}

	account := domain.Account{
		Username:   username,
		Credential: encoded,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Store.Users().CreateUser(ctx, account); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("registration with taken username", slog.String("username", username))
			return ErrDuplicateUsername
		}
		return err
	}

	log.Info("account registered", slog.String("username", username))
	return nil
}

// Verify checks a credential against the registry. Pure lookup, no mutation;
// an unknown username and a wrong credential are indistinguishable to the
// caller.
func (s *UserService) Verify(ctx context.Context, username, credential string) (domain.Account, error) {
	account, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrInvalidCredentials
		}
		return domain.Account{}, err
	}

	if err := s.Scheme.Verify(credential, account.Credential); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return domain.Account{}, ErrInvalidCredentials
		}
		return domain.Account{}, err
	}

	return account, nil
}
