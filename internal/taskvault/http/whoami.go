package http

import (
	"net/http"

	"github.com/quollsoft/taskvault/pkg/httpx"
	"github.com/quollsoft/taskvault/pkg/tasksdk"
)

type WhoAmIHandler struct {
	Anonymous string
}

// ServeHTTP godoc
//
//	@Summary		Caller Identity Endpoint
//	@Description	Report the principal resolved for this request. Never fails;
//	@Description	callers without a token see the anonymous principal.
//	@Tags			Identity
//	@Produce		json
//	@Security		IdentityToken
//	@Success		200	{object}	tasksdk.WhoAmIResponse	"identity, anonymous"
//	@Router			/v1/whoami [get].
func (h *WhoAmIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity := callerIdentity(r)

	httpx.WriteJSON(w, http.StatusOK, tasksdk.WhoAmIResponse{
		Identity:  identity.String(),
		Anonymous: identity.String() == h.Anonymous,
	})
}
