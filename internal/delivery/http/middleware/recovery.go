package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	h "eventsgateway/internal/delivery/http/helpers"
)

// Recovery turns a panic in next into a logged stack trace and the generic 500 response.
func Recovery(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					"method", r.Method,
					"path", r.URL.Path,
					"request_id", RequestIDFromContext(r.Context()),
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				h.WriteInternalError(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
