package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "eventsgateway/internal/delivery/http/helpers"
	"eventsgateway/internal/delivery/http/middleware"
	"eventsgateway/internal/domain"
)

// writeStoreError maps an error from a backend-delegating service call. Operations the backend
// rejected are reported with backendStatus and the backend's own message; anything else is
// logged and hidden behind the generic 500.
func writeStoreError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, backendStatus int) {
	if errors.Is(err, domain.ErrUnauthorized) {
		h.WriteJSONError(w, http.StatusUnauthorized, h.MsgUnauthorized)
		return
	}
	if be, ok := domain.AsBackendError(err); ok {
		logger.WarnContext(r.Context(), "backend rejected request",
			"path", r.URL.Path, "method", r.Method, "request_id", middleware.RequestIDFromContext(r.Context()), "err", err)
		h.WriteJSONError(w, backendStatus, be.Message)
		return
	}
	logger.ErrorContext(r.Context(), "request failed",
		"path", r.URL.Path, "method", r.Method, "request_id", middleware.RequestIDFromContext(r.Context()), "err", err)
	h.WriteInternalError(w)
}

// credential returns the caller credential set by RequireAuth, writing 401 when absent.
func credential(w http.ResponseWriter, r *http.Request) (domain.Credential, bool) {
	cred, ok := middleware.CredentialFromContext(r.Context())
	if !ok || cred.UserID() == "" {
		h.WriteJSONError(w, http.StatusUnauthorized, h.MsgUnauthorized)
		return domain.Credential{}, false
	}
	return cred, true
}
