package memory

import (
	"context"
	"sync"

	"github.com/quollsoft/taskvault/internal/taskvault/domain"
	"github.com/quollsoft/taskvault/internal/taskvault/store"
)

// Store keeps all service state in process memory. Nothing is persisted;
// every table is lost on restart.
//
// A single RWMutex guards the user, session, and task tables together. Task
// creation reads the session table and writes the task table, so one lock for
// everything keeps the lock ordering trivial and every repository operation a
// single critical section.
type Store struct {
	mu sync.RWMutex

	users    map[string]domain.Account
	sessions map[domain.Identity]domain.Session
	tasks    map[domain.TaskID]domain.Task

	// nextTaskID only ever increments, including across deletions.
	nextTaskID domain.TaskID
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]domain.Account),
		sessions: make(map[domain.Identity]domain.Session),
		tasks:    make(map[domain.TaskID]domain.Task),
	}
}

func (s *Store) Users() store.Users       { return &usersRepo{s: s} }
func (s *Store) Sessions() store.Sessions { return &sessionsRepo{s: s} }
func (s *Store) Tasks() store.Tasks       { return &tasksRepo{s: s} }

func (s *Store) Close() error { return nil }

// Ping always succeeds; the store has no external connection to lose.
func (s *Store) Ping(ctx context.Context) error { return nil }
