package http

import (
	"errors"
	"net/http"

	"github.com/quollsoft/taskvault/internal/taskvault/service"
	"github.com/quollsoft/taskvault/pkg/slogx"
	"github.com/quollsoft/taskvault/pkg/tasksdk"
)

type LogoutHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Logout Endpoint
//	@Description	End the calling identity's session.
//	@Tags			Accounts
//	@Produce		json
//	@Security		IdentityToken
//	@Success		200	{object}	nil
//	@Failure		401	{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	tasksdk.ErrorResponse	"error, error_description"
//	@Router			/v1/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.AuthService.Logout(ctx, callerIdentity(r)); err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthenticated):
			writeAPIError(w, http.StatusUnauthorized,
				tasksdk.ErrorCodeNotAuthenticated, "No active session")
		default:
			log.Error("failed to log out", "err", err)
			writeAPIError(w, http.StatusInternalServerError,
				tasksdk.ErrorCodeServerError, "Failed to log out")
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}
