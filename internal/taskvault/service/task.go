package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/quollsoft/taskvault/internal/taskvault/domain"
	"github.com/quollsoft/taskvault/internal/taskvault/store"
	"github.com/quollsoft/taskvault/pkg/slogx"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskService implements the task table operations. Every method consults
// the session gate first; the resolved username is only used for logging,
// ownership is keyed by identity.
type TaskService struct {
	Store store.Store
	Auth  *AuthService
}

// Create allocates the next task id and stores a new task owned by the
// caller. Always succeeds once the gate has passed. The due date is
// caller-supplied and deliberately unvalidated; it may be zero or in the
// past.
func (s *TaskService) Create(
	ctx context.Context,
	identity domain.Identity,
	title string,
	important bool,
	dueDate uint64,
) (domain.TaskID, error) {
	username, err := s.Auth.RequireSession(ctx, identity)
	if err != nil {
		return 0, err
	}

	task := domain.Task{
		Title:     title,
		Completed: false,
		Important: important,
		CreatedAt: time.Now().UTC(),
		DueDate:   dueDate,
		Owner:     identity,
	}

	id, err := s.Store.Tasks().CreateTask(ctx, task)
	if err != nil {
		return 0, err
	}

	slogx.FromContext(ctx).Info("task created",
		slog.Uint64("task_id", uint64(id)),
		slog.String("username", username),
	)
	return id, nil
}

// MyTasks returns every task owned by the caller in ascending id order.
func (s *TaskService) MyTasks(ctx context.Context, identity domain.Identity) ([]domain.Task, error) {
	if _, err := s.Auth.RequireSession(ctx, identity); err != nil {
		return nil, err
	}
	return s.Store.Tasks().ListByOwner(ctx, identity)
}

// CompletedTasks is MyTasks filtered to completed tasks.
func (s *TaskService) CompletedTasks(ctx context.Context, identity domain.Identity) ([]domain.Task, error) {
	if _, err := s.Auth.RequireSession(ctx, identity); err != nil {
		return nil, err
	}
	return s.Store.Tasks().ListCompletedByOwner(ctx, identity)
}

// ToggleCompleted flips the completed flag on the caller's lowest-id task
// with the given title. Titles are not unique, so with duplicates only the
// lowest id is affected; mutating by id instead would remove the ambiguity
// but changes the external contract.
func (s *TaskService) ToggleCompleted(ctx context.Context, identity domain.Identity, title string) error {
	username, err := s.Auth.RequireSession(ctx, identity)
	if err != nil {
		return err
	}

	if err := s.Store.Tasks().ToggleCompleted(ctx, identity, title); err != nil {
		return mapTaskErr(err)
	}

	slogx.FromContext(ctx).Debug("task status toggled",
		slog.String("title", title),
		slog.String("username", username),
	)
	return nil
}

// ToggleImportant flips the important flag, same lookup rules as
// ToggleCompleted.
func (s *TaskService) ToggleImportant(ctx context.Context, identity domain.Identity, title string) error {
	username, err := s.Auth.RequireSession(ctx, identity)
	if err != nil {
		return err
	}

	if err := s.Store.Tasks().ToggleImportant(ctx, identity, title); err != nil {
		return mapTaskErr(err)
	}

	slogx.FromContext(ctx).Debug("task importance toggled",
		slog.String("title", title),
		slog.String("username", username),
	)
	return nil
}

// Delete permanently removes the caller's lowest-id task with the given
// title. The id is never reused.
func (s *TaskService) Delete(ctx context.Context, identity domain.Identity, title string) error {
	username, err := s.Auth.RequireSession(ctx, identity)
	if err != nil {
		return err
	}

	if err := s.Store.Tasks().DeleteByTitle(ctx, identity, title); err != nil {
		return mapTaskErr(err)
	}

	slogx.FromContext(ctx).Info("task deleted",
		slog.String("title", title),
		slog.String("username", username),
	)
	return nil
}

func mapTaskErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrTaskNotFound
	}
	return err
}
