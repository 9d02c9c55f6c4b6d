package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "eventsgateway/internal/delivery/http/helpers"
	"eventsgateway/internal/domain"
)

type contextKey string

const credentialKey contextKey = "credential"

// SetCredential returns a context carrying the caller's credential. Used by auth middleware.
func SetCredential(ctx context.Context, cred domain.Credential) context.Context {
	return context.WithValue(ctx, credentialKey, cred)
}

// CredentialFromContext returns the authenticated caller's credential, if present.
func CredentialFromContext(ctx context.Context) (domain.Credential, bool) {
	cred, ok := ctx.Value(credentialKey).(domain.Credential)
	return cred, ok
}

// RequireAuth returns a wrapper that resolves the Bearer token to a caller and sets the
// credential in the request context. A missing or rejected token gets 401 and next is not
// called; a malformed header is refused without contacting the identity provider.
func RequireAuth(auth domain.AuthService, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(header[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, "missing token")
				return
			}
			cred, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					h.WriteJSONError(w, http.StatusUnauthorized, "invalid or expired token")
					return
				}
				logger.ErrorContext(r.Context(), "identity lookup failed",
					"path", r.URL.Path, "method", r.Method, "request_id", RequestIDFromContext(r.Context()), "err", err)
				h.WriteInternalError(w)
				return
			}
			r = r.WithContext(SetCredential(r.Context(), cred))
			next(w, r)
		}
	}
}
