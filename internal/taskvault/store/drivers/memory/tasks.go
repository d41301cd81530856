package memory

import (
	"context"
	"slices"

	"github.com/quollsoft/taskvault/internal/taskvault/domain"
	"github.com/quollsoft/taskvault/internal/taskvault/store"
)

type tasksRepo struct {
	s *Store
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) (domain.TaskID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id := r.s.nextTaskID
	r.s.nextTaskID++

	t.ID = id
	r.s.tasks[id] = t
	return id, nil
}

func (r *tasksRepo) ListByOwner(ctx context.Context, owner domain.Identity) ([]domain.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	tasks := make([]domain.Task, 0)
	for _, t := range r.s.tasks {
		if t.Owner == owner {
			tasks = append(tasks, t)
		}
	}
	sortByID(tasks)
	return tasks, nil
}

func (r *tasksRepo) ListCompletedByOwner(ctx context.Context, owner domain.Identity) ([]domain.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	tasks := make([]domain.Task, 0)
	for _, t := range r.s.tasks {
		if t.Owner == owner && t.Completed {
			tasks = append(tasks, t)
		}
	}
	sortByID(tasks)
	return tasks, nil
}

func (r *tasksRepo) ToggleCompleted(ctx context.Context, owner domain.Identity, title string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, ok := r.findLocked(owner, title)
	if !ok {
		return store.ErrNotFound
	}
	t := r.s.tasks[id]
	t.Completed = !t.Completed
	r.s.tasks[id] = t
	return nil
}

func (r *tasksRepo) ToggleImportant(ctx context.Context, owner domain.Identity, title string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, ok := r.findLocked(owner, title)
	if !ok {
		return store.ErrNotFound
	}
	t := r.s.tasks[id]
	t.Important = !t.Important
	r.s.tasks[id] = t
	return nil
}

func (r *tasksRepo) DeleteByTitle(ctx context.Context, owner domain.Identity, title string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, ok := r.findLocked(owner, title)
	if !ok {
		return store.ErrNotFound
	}
	delete(r.s.tasks, id)
	return nil
}

// findLocked returns the lowest id among the owner's tasks with an exact
// title match. Duplicate titles are legal; the lowest id wins, matching the
// ordered-map scan this behavior was defined by. Caller holds the lock.
func (r *tasksRepo) findLocked(owner domain.Identity, title string) (domain.TaskID, bool) {
	var (
		best  domain.TaskID
		found bool
	)
	for id, t := range r.s.tasks {
		if t.Owner != owner || t.Title != title {
			continue
		}
		if !found || id < best {
			best = id
			found = true
		}
	}
	return best, found
}

func sortByID(tasks []domain.Task) {
	slices.SortFunc(tasks, func(a, b domain.Task) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})
}
