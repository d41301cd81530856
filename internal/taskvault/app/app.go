package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quollsoft/taskvault/internal/taskvault/domain"
	httpapi "github.com/quollsoft/taskvault/internal/taskvault/http"
	"github.com/quollsoft/taskvault/internal/taskvault/service"
	"github.com/quollsoft/taskvault/internal/taskvault/store"
	"github.com/quollsoft/taskvault/internal/taskvault/store/drivers/memory"
	"github.com/quollsoft/taskvault/pkg/cryptox"
	"github.com/quollsoft/taskvault/pkg/jwtx"
	"github.com/quollsoft/taskvault/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the taskvault service with all its dependencies.
// The store is constructed exactly once here and handed to every service, so
// all mutable state has a single visible owner.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	signer   jwtx.Signer
	verifier jwtx.Verifier

	// Services
	userService     *service.UserService
	authService     *service.AuthService
	taskService     *service.TaskService
	identityService *service.IdentityService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "taskvault",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// All state lives in memory; there is deliberately no persistent driver.
	app.db = memory.NewStore()

	key, err := initIdentityKey(cfg, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity key: %w", err)
	}

	signer, err := jwtx.NewSignerEdDSA(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity signer: %w", err)
	}
	app.signer = signer
	app.verifier = jwtx.NewVerifierEdDSA(signer.Public(), cfg.Issuer)

	if err := app.initServices(); err != nil {
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("taskvault starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"credential_scheme", app.cfg.CredentialScheme,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down taskvault...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("taskvault stopped")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() error {
	scheme, err := cryptox.SchemeByName(app.cfg.CredentialScheme)
	if err != nil {
		return err
	}

	app.userService = &service.UserService{
		Store:  app.db,
		Scheme: scheme,
	}
	app.authService = &service.AuthService{
		Store: app.db,
		Users: app.userService,
	}
	app.taskService = &service.TaskService{
		Store: app.db,
		Auth:  app.authService,
	}
	app.identityService = &service.IdentityService{
		Signer: app.signer,
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.IdentityTokenTTL,
	}

	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		domain.Anonymous.String(),
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.UserService = app.userService
	router.AuthService = app.authService
	router.TaskService = app.taskService
	router.IdentityService = app.identityService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
