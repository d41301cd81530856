package taskvault_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/quollsoft/taskvault/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

func TestRegistrationDoesNotLogIn(t *testing.T) {
	baseURL, cleanup := setupTaskVaultContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := tasksdk.NewSDKClient(baseURL)

	caller, err := client.NewIdentity(ctx)
	require.NoError(t, err)
	require.NoError(t, caller.Register(ctx, "alice", "pw1234"))

	_, err = caller.Tasks(ctx)
	assertAPIError(t, err, http.StatusUnauthorized, tasksdk.ErrorCodeNotAuthenticated)
}

func TestDuplicateUsernameRejected(t *testing.T) {
	baseURL, cleanup := setupTaskVaultContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := tasksdk.NewSDKClient(baseURL)

	a, err := client.NewIdentity(ctx)
	require.NoError(t, err)
	require.NoError(t, a.Register(ctx, "alice", "pw1234"))

	b, err := client.NewIdentity(ctx)
	require.NoError(t, err)
	err = b.Register(ctx, "alice", "different")
	assertAPIError(t, err, http.StatusConflict, tasksdk.ErrorCodeDuplicateUsername)
}

func TestLoginWithBadCredentials(t *testing.T) {
	baseURL, cleanup := setupTaskVaultContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := tasksdk.NewSDKClient(baseURL)

	caller, err := client.NewIdentity(ctx)
	require.NoError(t, err)
	require.NoError(t, caller.Register(ctx, "alice", "pw1234"))

	err = caller.Login(ctx, "alice", "wrong")
	assertAPIError(t, err, http.StatusUnauthorized, tasksdk.ErrorCodeInvalidCredentials)

	// Unknown usernames are indistinguishable from wrong credentials.
	err = caller.Login(ctx, "mallory", "pw1234")
	assertAPIError(t, err, http.StatusUnauthorized, tasksdk.ErrorCodeInvalidCredentials)
}

func TestFailedLoginKeepsExistingSession(t *testing.T) {
	baseURL, cleanup := setupTaskVaultContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := tasksdk.NewSDKClient(baseURL)

	caller := newLoggedInCaller(t, client, "alice", "pw1234")

	err := caller.Login(ctx, "alice", "wrong")
	assertAPIError(t, err, http.StatusUnauthorized, tasksdk.ErrorCodeInvalidCredentials)

	// The session from the successful login survives the failed attempt.
	_, err = caller.Tasks(ctx)
	require.NoError(t, err)
}

func TestSharedAccountAcrossIdentities(t *testing.T) {
	baseURL, cleanup := setupTaskVaultContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := tasksdk.NewSDKClient(baseURL)

	a := newLoggedInCaller(t, client, "alice", "pw1234")
	_, err := a.CreateTask(ctx, "a-task", false, 0)
	require.NoError(t, err)

	// A second identity logging into the same account still has its own
	// task list - ownership follows the identity, not the username.
	b, err := client.NewIdentity(ctx)
	require.NoError(t, err)
	require.NoError(t, b.Login(ctx, "alice", "pw1234"))

	tasks, err := b.Tasks(ctx)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestLogoutLifecycle(t *testing.T) {
	baseURL, cleanup := setupTaskVaultContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := tasksdk.NewSDKClient(baseURL)

	caller := newLoggedInCaller(t, client, "alice", "pw1234")
	require.NoError(t, caller.Logout(ctx))

	_, err := caller.Tasks(ctx)
	assertAPIError(t, err, http.StatusUnauthorized, tasksdk.ErrorCodeNotAuthenticated)

	err = caller.Logout(ctx)
	assertAPIError(t, err, http.StatusUnauthorized, tasksdk.ErrorCodeNotAuthenticated)

	// Logging back in restores access.
	require.NoError(t, caller.Login(ctx, "alice", "pw1234"))
	_, err = caller.Tasks(ctx)
	require.NoError(t, err)
}
