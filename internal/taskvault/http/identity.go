package http

import (
	"net/http"

	"github.com/quollsoft/taskvault/internal/taskvault/service"
	"github.com/quollsoft/taskvault/pkg/httpx"
	"github.com/quollsoft/taskvault/pkg/slogx"
	"github.com/quollsoft/taskvault/pkg/tasksdk"
)

type IdentityMintHandler struct {
	IdentityService *service.IdentityService
}

// ServeHTTP godoc
//
//	@Summary		Mint Caller Identity
//	@Description	Mint a fresh caller principal and the bearer token that proves it.
//	@Description	Store the token; it is the only proof of this identity.
//	@Tags			Identity
//	@Produce		json
//	@Success		200	{object}	tasksdk.IdentityResponse	"identity, token"
//	@Failure		500	{object}	tasksdk.ErrorResponse		"error, error_description"
//	@Router			/v1/identity [post].
func (h *IdentityMintHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity, token, err := h.IdentityService.Mint(ctx)
	if err != nil {
		log.Error("failed to mint identity", "err", err)
		writeAPIError(w, http.StatusInternalServerError,
			tasksdk.ErrorCodeServerError, "Failed to mint identity")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tasksdk.IdentityResponse{
		Identity: identity.String(),
		Token:    token,
	})
}
