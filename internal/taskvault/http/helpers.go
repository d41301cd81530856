package http

import (
	"net/http"

	"github.com/quollsoft/taskvault/internal/taskvault/domain"
	"github.com/quollsoft/taskvault/pkg/httpx"
	"github.com/quollsoft/taskvault/pkg/tasksdk"
)

// callerIdentity returns the principal the identity middleware resolved for
// this request. The middleware always attaches one; the anonymous fallback
// here only guards handlers exercised outside the full chain (tests).
func callerIdentity(r *http.Request) domain.Identity {
	if id := httpx.IdentityFromContext(r.Context()); id != "" {
		return domain.Identity(id)
	}
	return domain.Anonymous
}

func writeAPIError(w http.ResponseWriter, status int, code, desc string) {
	httpx.WriteJSON(w, status, tasksdk.ErrorResponse{
		Error:            code,
		ErrorDescription: desc,
	})
}
