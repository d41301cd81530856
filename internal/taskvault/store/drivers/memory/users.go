package memory

import (
	"context"

	"github.com/quollsoft/taskvault/internal/taskvault/domain"
	"github.com/quollsoft/taskvault/internal/taskvault/store"
)

type usersRepo struct {
	s *Store
}

func (r *usersRepo) CreateUser(ctx context.Context, a domain.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[a.Username]; ok {
		return store.ErrAlreadyExists
	}
	r.s.users[a.Username] = a
	return nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.users[username]
	if !ok {
		return domain.Account{}, store.ErrNotFound
	}
	return a, nil
}

func (r *usersRepo) CountUsers(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return len(r.s.users), nil
}
