package service

import (
	"context"
	"testing"

	"github.com/quollsoft/taskvault/internal/taskvault/store/drivers/memory"
	"github.com/quollsoft/taskvault/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func newUserService() *UserService {
	return &UserService{
		Store:  memory.NewStore(),
		Scheme: cryptox.PlainScheme{},
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	users := newUserService()

	require.NoError(t, users.Register(ctx, "alice", "pw1"))
	require.ErrorIs(t, users.Register(ctx, "alice", "pw2"), ErrDuplicateUsername)

	// The original credential must survive the failed re-registration.
	_, err := users.Verify(ctx, "alice", "pw1")
	require.NoError(t, err)
	_, err = users.Verify(ctx, "alice", "pw2")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyUnknownUserAndWrongCredential(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	users := newUserService()

	require.NoError(t, users.Register(ctx, "alice", "pw1"))

	t.Run("unknown username", func(t *testing.T) {
		_, err := users.Verify(ctx, "bob", "pw1")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong credential", func(t *testing.T) {
		_, err := users.Verify(ctx, "alice", "nope")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("correct credential", func(t *testing.T) {
		account, err := users.Verify(ctx, "alice", "pw1")
		require.NoError(t, err)
		require.Equal(t, "alice", account.Username)
	})
}

func TestRegisterEncodesCredential(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	users := &UserService{
		Store:  memory.NewStore(),
		Scheme: cryptox.Argon2Scheme{},
	}

	require.NoError(t, users.Register(ctx, "alice", "pw1"))

	// Login still works against the encoded form.
	_, err := users.Verify(ctx, "alice", "pw1")
	require.NoError(t, err)

	// The raw credential is not what ended up in the store.
	stored, err := users.Store.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotEqual(t, "pw1", stored.Credential)
	require.Contains(t, stored.Credential, "$argon2id$")
}
