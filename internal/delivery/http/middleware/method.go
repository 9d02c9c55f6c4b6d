package middleware

import (
	"net/http"
	"strings"

	h "eventsgateway/internal/delivery/http/helpers"
)

// AllowMethods returns a wrapper that answers any other method with a JSON 405 and an
// Allow header. Routes wrap it outside RequireAuth so a wrong method never reaches auth.
func AllowMethods(methods ...string) func(http.HandlerFunc) http.HandlerFunc {
	allow := strings.Join(methods, ", ")
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			for _, m := range methods {
				if r.Method == m {
					next(w, r)
					return
				}
			}
			w.Header().Set("Allow", allow)
			h.WriteJSONError(w, http.StatusMethodNotAllowed, h.MsgMethodNotAllowed)
		}
	}
}
