package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/quollsoft/taskvault/internal/taskvault/domain"
	"github.com/quollsoft/taskvault/internal/taskvault/service"
	"github.com/quollsoft/taskvault/pkg/httpx"
	"github.com/quollsoft/taskvault/pkg/slogx"
	"github.com/quollsoft/taskvault/pkg/tasksdk"
)

type TasksHandler struct {
	TaskService *service.TaskService
}

// HandleCreate godoc
//
//	@Summary		Create Task Endpoint
//	@Description	Create a task owned by the calling identity. The due date is
//	@Description	stored verbatim and may be zero or in the past.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Security		IdentityToken
//	@Param			request	body		tasksdk.CreateTaskRequest	true	"title, important, due_date"
//	@Success		201		{object}	tasksdk.CreateTaskResponse	"id"
//	@Failure		400		{object}	tasksdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	tasksdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	tasksdk.ErrorResponse		"error, error_description"
//	@Router			/v1/tasks [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tasksdk.CreateTaskRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeAPIError(w, http.StatusBadRequest,
			tasksdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	id, err := h.TaskService.Create(ctx, callerIdentity(r), req.Title, req.Important, req.DueDate)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthenticated):
			writeAPIError(w, http.StatusUnauthorized,
				tasksdk.ErrorCodeNotAuthenticated, "Not authenticated")
		default:
			log.Error("failed to create task", "err", err)
			writeAPIError(w, http.StatusInternalServerError,
				tasksdk.ErrorCodeServerError, "Failed to create task")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, tasksdk.CreateTaskResponse{ID: uint64(id)})
}

// HandleList godoc
//
//	@Summary		List Tasks Endpoint
//	@Description	List every task owned by the calling identity, ascending by id.
//	@Tags			Tasks
//	@Produce		json
//	@Security		IdentityToken
//	@Success		200	{object}	tasksdk.TasksResponse	"tasks"
//	@Failure		401	{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Router			/v1/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.TaskService.MyTasks)
}

// HandleListCompleted godoc
//
//	@Summary		List Completed Tasks Endpoint
//	@Description	List the calling identity's completed tasks, ascending by id.
//	@Tags			Tasks
//	@Produce		json
//	@Security		IdentityToken
//	@Success		200	{object}	tasksdk.TasksResponse	"tasks"
//	@Failure		401	{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Router			/v1/tasks/completed [get].
func (h *TasksHandler) HandleListCompleted(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.TaskService.CompletedTasks)
}

// HandleToggleCompleted godoc
//
//	@Summary		Toggle Task Status Endpoint
//	@Description	Flip the completed flag on the calling identity's lowest-id task
//	@Description	with the given title.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Security		IdentityToken
//	@Param			request	body		tasksdk.TaskMutationRequest	true	"title"
//	@Success		200		{object}	nil
//	@Failure		400		{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Router			/v1/tasks/toggle-completed [post].
func (h *TasksHandler) HandleToggleCompleted(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "toggle task status", h.TaskService.ToggleCompleted)
}

// HandleToggleImportant godoc
//
//	@Summary		Toggle Task Importance Endpoint
//	@Description	Flip the important flag on the calling identity's lowest-id task
//	@Description	with the given title.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Security		IdentityToken
//	@Param			request	body		tasksdk.TaskMutationRequest	true	"title"
//	@Success		200		{object}	nil
//	@Failure		400		{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Router			/v1/tasks/toggle-important [post].
func (h *TasksHandler) HandleToggleImportant(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "toggle task importance", h.TaskService.ToggleImportant)
}

// HandleDelete godoc
//
//	@Summary		Delete Task Endpoint
//	@Description	Permanently remove the calling identity's lowest-id task with the
//	@Description	given title. The task id is never reused.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Security		IdentityToken
//	@Param			request	body		tasksdk.TaskMutationRequest	true	"title"
//	@Success		200		{object}	nil
//	@Failure		400		{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Router			/v1/tasks/delete [post].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "delete task", h.TaskService.Delete)
}

func (h *TasksHandler) list(
	w http.ResponseWriter,
	r *http.Request,
	fetch func(context.Context, domain.Identity) ([]domain.Task, error),
) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	tasks, err := fetch(ctx, callerIdentity(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthenticated):
			writeAPIError(w, http.StatusUnauthorized,
				tasksdk.ErrorCodeNotAuthenticated, "Not authenticated")
		default:
			log.Error("failed to list tasks", "err", err)
			writeAPIError(w, http.StatusInternalServerError,
				tasksdk.ErrorCodeServerError, "Failed to list tasks")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.TasksResponse{Tasks: toWireTasks(tasks)})
}

func (h *TasksHandler) mutate(
	w http.ResponseWriter,
	r *http.Request,
	action string,
	op func(context.Context, domain.Identity, string) error,
) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tasksdk.TaskMutationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeAPIError(w, http.StatusBadRequest,
			tasksdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	if err := op(ctx, callerIdentity(r), req.Title); err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthenticated):
			writeAPIError(w, http.StatusUnauthorized,
				tasksdk.ErrorCodeNotAuthenticated, "Not authenticated")
		case errors.Is(err, service.ErrTaskNotFound):
			writeAPIError(w, http.StatusNotFound,
				tasksdk.ErrorCodeTaskNotFound, "Task not found")
		default:
			log.Error("failed to "+action, "err", err)
			writeAPIError(w, http.StatusInternalServerError,
				tasksdk.ErrorCodeServerError, "Failed to "+action)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

func toWireTasks(tasks []domain.Task) []tasksdk.Task {
	out := make([]tasksdk.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, tasksdk.Task{
			ID:        uint64(t.ID),
			Title:     t.Title,
			Completed: t.Completed,
			Important: t.Important,
			CreatedAt: t.CreatedAt.Format(time.RFC3339Nano),
			DueDate:   t.DueDate,
			Owner:     t.Owner.String(),
		})
	}
	return out
}
