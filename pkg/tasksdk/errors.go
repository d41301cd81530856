package tasksdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes returned by the taskvault API.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeDuplicateUsername  = "duplicate_username"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeNotAuthenticated   = "not_authenticated"
	ErrorCodeTaskNotFound       = "task_not_found"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeServerError        = "server_error"
)

// APIError represents an error response from the service. It implements the
// error interface so SDK callers can inspect the code with errors.As.
type APIError struct {
	// StatusCode is the HTTP status code for this error.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code.
	Code string `json:"error"`

	// Description is a human-readable description of the error.
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// parseAPIError turns a non-2xx response into an *APIError. Bodies that are
// not the standard error shape still produce a usable error.
func parseAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
		apiErr.Code = ErrorCodeServerError
		apiErr.Description = fmt.Sprintf("unexpected response (status %d)", resp.StatusCode)
		return apiErr
	}

	apiErr.Code = body.Error
	apiErr.Description = body.ErrorDescription
	return apiErr
}
