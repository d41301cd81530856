package httpx

import (
	"net/http"
	"strings"

	"github.com/quollsoft/taskvault/pkg/jwtx"
	"github.com/quollsoft/taskvault/pkg/slogx"
)

// IdentityMiddleware resolves the caller's principal from a bearer identity
// token. Requests without a token run as the anonymous principal; a token
// that is present but fails verification is rejected at the transport with
// 401 so a forged principal never reaches the core.
func IdentityMiddleware(v jwtx.Verifier, anonymous string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" {
				ctx = ContextWithIdentity(ctx, anonymous)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "malformed authorization header")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("identity token verify failed", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}
			if claims.Subject == "" {
				writeBearerError(w, "token has no subject")
				return
			}

			ctx = ContextWithIdentity(ctx, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth, with the standard
// error body alongside the challenge header.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "invalid_token",
		"error_description": desc,
	})
}
