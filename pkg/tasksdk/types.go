package tasksdk

// Request and response bodies for the taskvault HTTP API. The server
// handlers and the SDK client share these so the wire contract lives in one
// place.

// RegisterRequest creates a new account. Registration does not log the
// caller in.
type RegisterRequest struct {
	Username   string `json:"username"`
	Credential string `json:"credential"`
}

// LoginRequest binds the calling identity's session to the username.
type LoginRequest struct {
	Username   string `json:"username"`
	Credential string `json:"credential"`
}

// CreateTaskRequest creates a task owned by the calling identity.
type CreateTaskRequest struct {
	Title     string `json:"title"`
	Important bool   `json:"important"`
	DueDate   uint64 `json:"due_date"`
}

// CreateTaskResponse carries the id assigned to a new task.
type CreateTaskResponse struct {
	ID uint64 `json:"id"`
}

// TaskMutationRequest targets a task by title. Titles are not unique; the
// lowest-id owned match is affected.
type TaskMutationRequest struct {
	Title string `json:"title"`
}

// Task is the wire form of a stored task.
type Task struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Important bool   `json:"important"`
	CreatedAt string `json:"created_at"` // RFC 3339
	DueDate   uint64 `json:"due_date"`
	Owner     string `json:"owner"`
}

// TasksResponse wraps a task listing.
type TasksResponse struct {
	Tasks []Task `json:"tasks"`
}

// IdentityResponse is returned when minting a fresh caller principal.
type IdentityResponse struct {
	// Identity is the new principal.
	Identity string `json:"identity"`

	// Token is the bearer token that proves the principal on later requests.
	Token string `json:"token"`
}

// WhoAmIResponse reports the principal the transport resolved for this
// request. Never an error; tokenless callers see the anonymous principal.
type WhoAmIResponse struct {
	Identity  string `json:"identity"`
	Anonymous bool   `json:"anonymous"`
}

// HealthResponse is returned by the livez and readyz endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

// ErrorResponse is the error body every endpoint uses.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g. "task_not_found").
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error.
	ErrorDescription string `json:"error_description"`
}
