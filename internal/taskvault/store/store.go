package store

import (
	"context"
	"errors"

	"github.com/quollsoft/taskvault/internal/taskvault/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface owning all service state: the user
// registry, the session table, and the task table. It is constructed once at
// startup and handed to every service, so there are no hidden singletons.
// Drivers must make each repository operation atomic; the memory driver does
// this with a single lock guarding all three tables together.
type Store interface {
	Users() Users
	Sessions() Sessions
	Tasks() Tasks

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the store is usable.
	Ping(ctx context.Context) error
}

type Users interface {
	// CreateUser inserts a new account. Returns ErrAlreadyExists if the
	// username is taken; the existing account is left untouched.
	CreateUser(ctx context.Context, a domain.Account) error

	// GetUserByUsername is used during login.
	GetUserByUsername(ctx context.Context, username string) (domain.Account, error)

	// CountUsers returns the number of registered accounts.
	CountUsers(ctx context.Context) (int, error)
}

type Sessions interface {
	// StartSession binds identity to username, replacing any prior session
	// for that identity. It cannot fail.
	StartSession(ctx context.Context, identity domain.Identity, username string) error

	// EndSession removes the session for identity. Returns ErrNotFound if
	// none exists.
	EndSession(ctx context.Context, identity domain.Identity) error

	// Resolve returns the username bound to identity, or ErrNotFound. This
	// is the sole authorization primitive consulted by task operations.
	Resolve(ctx context.Context, identity domain.Identity) (string, error)

	// CountSessions returns the number of live sessions.
	CountSessions(ctx context.Context) (int, error)
}

type Tasks interface {
	// CreateTask assigns the next task id (starts at 0, +1 per call, never
	// reset or reused) and stores the task. The id on t is ignored.
	CreateTask(ctx context.Context, t domain.Task) (domain.TaskID, error)

	// ListByOwner returns all tasks owned by identity in ascending id order.
	ListByOwner(ctx context.Context, owner domain.Identity) ([]domain.Task, error)

	// ListCompletedByOwner is ListByOwner filtered to completed tasks.
	ListCompletedByOwner(ctx context.Context, owner domain.Identity) ([]domain.Task, error)

	// ToggleCompleted flips the completed flag on the lowest-id owned task
	// whose title matches exactly. Returns ErrNotFound if none matches.
	ToggleCompleted(ctx context.Context, owner domain.Identity, title string) error

	// ToggleImportant flips the important flag, same lookup rules as
	// ToggleCompleted.
	ToggleImportant(ctx context.Context, owner domain.Identity, title string) error

	// DeleteByTitle removes the lowest-id owned task whose title matches
	// exactly. The id is not reused. Returns ErrNotFound if none matches.
	DeleteByTitle(ctx context.Context, owner domain.Identity, title string) error
}
