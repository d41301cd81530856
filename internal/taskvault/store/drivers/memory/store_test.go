package memory

import (
	"context"
	"testing"
	"time"

	"github.com/quollsoft/taskvault/internal/taskvault/domain"
	"github.com/quollsoft/taskvault/internal/taskvault/store"
	"github.com/stretchr/testify/require"
)

func newTask(owner domain.Identity, title string) domain.Task {
	return domain.Task{
		Title:     title,
		CreatedAt: time.Now().UTC(),
		Owner:     owner,
	}
}

func TestUsersUniqueness(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()

	alice := domain.Account{Username: "alice", Credential: "pw1", CreatedAt: time.Now()}
	require.NoError(t, s.Users().CreateUser(ctx, alice))

	// Second registration with the same username must fail and must not
	// touch the stored account.
	err := s.Users().CreateUser(ctx, domain.Account{Username: "alice", Credential: "pw2"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	got, err := s.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "pw1", got.Credential)

	count, err := s.Users().CountUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestUsersNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()

	_, err := s.Users().GetUserByUsername(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSessionsLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	identity := domain.Identity("caller-1")

	_, err := s.Sessions().Resolve(ctx, identity)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Sessions().StartSession(ctx, identity, "alice"))

	username, err := s.Sessions().Resolve(ctx, identity)
	require.NoError(t, err)
	require.Equal(t, "alice", username)

	// A later login silently replaces the session.
	require.NoError(t, s.Sessions().StartSession(ctx, identity, "bob"))
	username, err = s.Sessions().Resolve(ctx, identity)
	require.NoError(t, err)
	require.Equal(t, "bob", username)

	require.NoError(t, s.Sessions().EndSession(ctx, identity))
	require.ErrorIs(t, s.Sessions().EndSession(ctx, identity), store.ErrNotFound)

	_, err = s.Sessions().Resolve(ctx, identity)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestTaskIDsMonotonic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	owner := domain.Identity("caller-1")

	id0, err := s.Tasks().CreateTask(ctx, newTask(owner, "a"))
	require.NoError(t, err)
	require.Equal(t, domain.TaskID(0), id0)

	id1, err := s.Tasks().CreateTask(ctx, newTask(owner, "b"))
	require.NoError(t, err)
	require.Equal(t, domain.TaskID(1), id1)

	// Deleting must not free the id for reuse.
	require.NoError(t, s.Tasks().DeleteByTitle(ctx, owner, "b"))

	id2, err := s.Tasks().CreateTask(ctx, newTask(owner, "c"))
	require.NoError(t, err)
	require.Equal(t, domain.TaskID(2), id2)
}

func TestTasksOwnershipScoping(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	a := domain.Identity("caller-a")
	b := domain.Identity("caller-b")

	_, err := s.Tasks().CreateTask(ctx, newTask(a, "shared title"))
	require.NoError(t, err)
	_, err = s.Tasks().CreateTask(ctx, newTask(b, "shared title"))
	require.NoError(t, err)
	_, err = s.Tasks().CreateTask(ctx, newTask(a, "only a"))
	require.NoError(t, err)

	tasksA, err := s.Tasks().ListByOwner(ctx, a)
	require.NoError(t, err)
	require.Len(t, tasksA, 2)
	for _, task := range tasksA {
		require.Equal(t, a, task.Owner)
	}

	tasksB, err := s.Tasks().ListByOwner(ctx, b)
	require.NoError(t, err)
	require.Len(t, tasksB, 1)
	require.Equal(t, b, tasksB[0].Owner)

	// Mutating a title B doesn't own must not leak across owners.
	require.ErrorIs(t, s.Tasks().ToggleCompleted(ctx, b, "only a"), store.ErrNotFound)
	require.ErrorIs(t, s.Tasks().DeleteByTitle(ctx, b, "only a"), store.ErrNotFound)
}

func TestTasksListAscendingByID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	owner := domain.Identity("caller-1")

	for _, title := range []string{"c", "a", "b"} {
		_, err := s.Tasks().CreateTask(ctx, newTask(owner, title))
		require.NoError(t, err)
	}

	tasks, err := s.Tasks().ListByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	for i := 1; i < len(tasks); i++ {
		require.Less(t, tasks[i-1].ID, tasks[i].ID)
	}
}

func TestToggleAffectsLowestIDMatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	owner := domain.Identity("caller-1")

	first, err := s.Tasks().CreateTask(ctx, newTask(owner, "dup"))
	require.NoError(t, err)
	second, err := s.Tasks().CreateTask(ctx, newTask(owner, "dup"))
	require.NoError(t, err)

	require.NoError(t, s.Tasks().ToggleCompleted(ctx, owner, "dup"))

	tasks, err := s.Tasks().ListByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, first, tasks[0].ID)
	require.True(t, tasks[0].Completed)
	require.Equal(t, second, tasks[1].ID)
	require.False(t, tasks[1].Completed)

	// Toggling again restores the original state of the same task.
	require.NoError(t, s.Tasks().ToggleCompleted(ctx, owner, "dup"))
	tasks, err = s.Tasks().ListByOwner(ctx, owner)
	require.NoError(t, err)
	require.False(t, tasks[0].Completed)
}

func TestDeleteRemovesLowestIDMatchOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	owner := domain.Identity("caller-1")

	_, err := s.Tasks().CreateTask(ctx, newTask(owner, "dup"))
	require.NoError(t, err)
	second, err := s.Tasks().CreateTask(ctx, newTask(owner, "dup"))
	require.NoError(t, err)

	require.NoError(t, s.Tasks().DeleteByTitle(ctx, owner, "dup"))

	tasks, err := s.Tasks().ListByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, second, tasks[0].ID)

	require.ErrorIs(t, s.Tasks().DeleteByTitle(ctx, owner, "missing"), store.ErrNotFound)
}

func TestListCompletedFilters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	owner := domain.Identity("caller-1")

	_, err := s.Tasks().CreateTask(ctx, newTask(owner, "open"))
	require.NoError(t, err)
	_, err = s.Tasks().CreateTask(ctx, newTask(owner, "done"))
	require.NoError(t, err)
	require.NoError(t, s.Tasks().ToggleCompleted(ctx, owner, "done"))

	completed, err := s.Tasks().ListCompletedByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	require.Equal(t, "done", completed[0].Title)
	require.True(t, completed[0].Completed)
}
