package http

import (
	"errors"
	"net/http"

	"github.com/quollsoft/taskvault/internal/taskvault/service"
	"github.com/quollsoft/taskvault/pkg/httpx"
	"github.com/quollsoft/taskvault/pkg/slogx"
	"github.com/quollsoft/taskvault/pkg/tasksdk"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Verify the credential and bind the calling identity's session to
//	@Description	the username. A later login for the same identity silently
//	@Description	replaces the session.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Security		IdentityToken
//	@Param			request	body		tasksdk.LoginRequest	true	"username, credential"
//	@Success		200		{object}	nil
//	@Failure		400		{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tasksdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeAPIError(w, http.StatusBadRequest,
			tasksdk.ErrorCodeInvalidRequest, "Invalid JSON body")
		return
	}

	if req.Username == "" || req.Credential == "" {
		writeAPIError(w, http.StatusBadRequest,
			tasksdk.ErrorCodeInvalidRequest, "username and credential are required")
		return
	}

	if err := h.AuthService.Login(ctx, callerIdentity(r), req.Username, req.Credential); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			writeAPIError(w, http.StatusUnauthorized,
				tasksdk.ErrorCodeInvalidCredentials, "Invalid username or password")
		default:
			log.Error("failed to log in", "err", err)
			writeAPIError(w, http.StatusInternalServerError,
				tasksdk.ErrorCodeServerError, "Failed to log in")
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}
