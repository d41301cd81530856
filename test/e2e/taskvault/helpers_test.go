package taskvault_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/quollsoft/taskvault/pkg/tasksdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for taskvault end-to-end tests.
 * This includes container setup, account helpers, and assertions.
 */

const (
	testImageName = "taskvault-test:latest"

	anonymousPrincipal = "anonymous"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building TaskVault Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up TaskVault Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/taskvault/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupTaskVaultContainer starts the service in a container and returns the
// base URL. Each call gets a fresh container, so tests never share state.
func setupTaskVaultContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"TASKVAULT_ISSUER": "taskvault-e2e",
			// Plain comparison keeps the suite fast; the argon2id scheme has
			// its own unit coverage.
			"TASKVAULT_CREDENTIAL_SCHEME": "plain",
			"ENV":                         "test",
			"LOG_LEVEL":                   "info",
			"LOG_FORMAT":                  "json",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// newLoggedInCaller mints a fresh identity, registers the username, and logs
// in. Most scenarios start from this state.
func newLoggedInCaller(t *testing.T, client *tasksdk.SDKClient, username, credential string) *tasksdk.Caller {
	t.Helper()
	ctx := context.Background()

	caller, err := client.NewIdentity(ctx)
	require.NoError(t, err, "identity minting should succeed")

	require.NoError(t, caller.Register(ctx, username, credential), "registration should succeed")
	require.NoError(t, caller.Login(ctx, username, credential), "login should succeed")

	return caller
}

// assertAPIError verifies an SDK error carries the expected status and code.
func assertAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()

	var apiErr *tasksdk.APIError
	require.ErrorAs(t, err, &apiErr, "error should be an API error")
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *tasksdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
