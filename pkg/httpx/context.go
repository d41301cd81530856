package httpx

import "context"

type ctxKey string

const (
	// CtxKeyIdentity holds the caller's principal string for the request.
	CtxKeyIdentity ctxKey = "identity"
)

// ContextWithIdentity attaches a caller principal to the context.
func ContextWithIdentity(ctx context.Context, identity string) context.Context {
	return context.WithValue(ctx, CtxKeyIdentity, identity)
}

// IdentityFromContext returns the caller principal attached by the identity
// middleware, or "" if none was attached.
func IdentityFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyIdentity).(string); ok {
		return v
	}
	return ""
}
