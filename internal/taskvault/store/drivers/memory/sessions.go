package memory

import (
	"context"
	"time"

	"github.com/quollsoft/taskvault/internal/taskvault/domain"
	"github.com/quollsoft/taskvault/internal/taskvault/store"
)

type sessionsRepo struct {
	s *Store
}

// StartSession overwrites any prior session for the identity; a second login
// replaces the first without error.
func (r *sessionsRepo) StartSession(ctx context.Context, identity domain.Identity, username string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.sessions[identity] = domain.Session{
		Identity:  identity,
		Username:  username,
		StartedAt: time.Now().UTC(),
	}
	return nil
}

func (r *sessionsRepo) EndSession(ctx context.Context, identity domain.Identity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.sessions[identity]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.sessions, identity)
	return nil
}

func (r *sessionsRepo) Resolve(ctx context.Context, identity domain.Identity) (string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sess, ok := r.s.sessions[identity]
	if !ok {
		return "", store.ErrNotFound
	}
	return sess.Username, nil
}

func (r *sessionsRepo) CountSessions(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return len(r.s.sessions), nil
}
