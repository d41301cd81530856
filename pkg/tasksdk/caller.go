package tasksdk

import (
	"context"
	"net/http"
)

// Caller is the SDK view of one caller identity. All task and session
// operations happen through a Caller so the identity token is attached
// consistently.
type Caller struct {
	client   *SDKClient
	identity string
	token    string
}

// Identity returns the principal this caller was minted with, or "" for the
// anonymous caller.
func (cl *Caller) Identity() string { return cl.identity }

// Token returns the raw identity token for storage and later rebinding.
func (cl *Caller) Token() string { return cl.token }

// Register creates a new account. It does not log the caller in.
func (cl *Caller) Register(ctx context.Context, username, credential string) error {
	req := RegisterRequest{Username: username, Credential: credential}
	return cl.client.doJSON(ctx, http.MethodPost, "/v1/register", cl.token, req, nil)
}

// Login binds this caller's session to the username.
func (cl *Caller) Login(ctx context.Context, username, credential string) error {
	req := LoginRequest{Username: username, Credential: credential}
	return cl.client.doJSON(ctx, http.MethodPost, "/v1/login", cl.token, req, nil)
}

// Logout ends this caller's session.
func (cl *Caller) Logout(ctx context.Context) error {
	return cl.client.doJSON(ctx, http.MethodPost, "/v1/logout", cl.token, nil, nil)
}

// CreateTask creates a task owned by this caller and returns its id.
func (cl *Caller) CreateTask(ctx context.Context, title string, important bool, dueDate uint64) (uint64, error) {
	req := CreateTaskRequest{Title: title, Important: important, DueDate: dueDate}
	var resp CreateTaskResponse
	if err := cl.client.doJSON(ctx, http.MethodPost, "/v1/tasks", cl.token, req, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// Tasks lists every task owned by this caller, ascending by id.
func (cl *Caller) Tasks(ctx context.Context) ([]Task, error) {
	var resp TasksResponse
	if err := cl.client.doJSON(ctx, http.MethodGet, "/v1/tasks", cl.token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// CompletedTasks lists this caller's completed tasks, ascending by id.
func (cl *Caller) CompletedTasks(ctx context.Context) ([]Task, error) {
	var resp TasksResponse
	if err := cl.client.doJSON(ctx, http.MethodGet, "/v1/tasks/completed", cl.token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// ToggleCompleted flips the completed flag on the lowest-id owned task with
// this title.
func (cl *Caller) ToggleCompleted(ctx context.Context, title string) error {
	req := TaskMutationRequest{Title: title}
	return cl.client.doJSON(ctx, http.MethodPost, "/v1/tasks/toggle-completed", cl.token, req, nil)
}

// ToggleImportant flips the important flag on the lowest-id owned task with
// this title.
func (cl *Caller) ToggleImportant(ctx context.Context, title string) error {
	req := TaskMutationRequest{Title: title}
	return cl.client.doJSON(ctx, http.MethodPost, "/v1/tasks/toggle-important", cl.token, req, nil)
}

// DeleteTask permanently removes the lowest-id owned task with this title.
func (cl *Caller) DeleteTask(ctx context.Context, title string) error {
	req := TaskMutationRequest{Title: title}
	return cl.client.doJSON(ctx, http.MethodPost, "/v1/tasks/delete", cl.token, req, nil)
}

// WhoAmI reports the principal the service resolves for this caller. It
// never fails for a well-formed token; anonymous callers get the anonymous
// principal back.
func (cl *Caller) WhoAmI(ctx context.Context) (*WhoAmIResponse, error) {
	var resp WhoAmIResponse
	if err := cl.client.doJSON(ctx, http.MethodGet, "/v1/whoami", cl.token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
