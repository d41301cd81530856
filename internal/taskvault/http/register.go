package http

import (
	"errors"
	"net/http"

	"github.com/quollsoft/taskvault/internal/taskvault/service"
	"github.com/quollsoft/taskvault/pkg/httpx"
	"github.com/quollsoft/taskvault/pkg/slogx"
	"github.com/quollsoft/taskvault/pkg/tasksdk"
)

type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Register Account Endpoint
//	@Description	Create a new account with a unique username. Registration does
//	@Description	not start a session; call login afterwards.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tasksdk.RegisterRequest	true	"username, credential"
//	@Success		201		{object}	nil
//	@Failure		400		{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Router			/v1/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tasksdk.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeAPIError(w, http.StatusBadRequest,
			tasksdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	if req.Username == "" {
		writeAPIError(w, http.StatusBadRequest,
			tasksdk.ErrorCodeInvalidRequest, "username is required")
		return
	}
	if req.Credential == "" {
		writeAPIError(w, http.StatusBadRequest,
			tasksdk.ErrorCodeInvalidRequest, "credential is required")
		return
	}

	if err := h.UserService.Register(ctx, req.Username, req.Credential); err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateUsername):
			writeAPIError(w, http.StatusConflict,
				tasksdk.ErrorCodeDuplicateUsername, "Username already exists")
		default:
			log.Error("failed to register account", "err", err)
			writeAPIError(w, http.StatusInternalServerError,
				tasksdk.ErrorCodeServerError, "Failed to register account")
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
}
