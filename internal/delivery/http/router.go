package http

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"eventsgateway/internal/delivery/http/controllers"
	h "eventsgateway/internal/delivery/http/helpers"
	"eventsgateway/internal/delivery/http/middleware"
	"eventsgateway/internal/domain"
)

// Controllers groups the handlers the router exposes.
type Controllers struct {
	Auth   *controllers.AuthController
	Events *controllers.EventController
	Upload *controllers.UploadController
}

// NewRouter initializes the HTTP router with all application routes. Every request passes
// CORS first, so OPTIONS is answered before method checks, auth or body parsing; each
// function route then checks its method before authenticating.
func NewRouter(logger *slog.Logger, auth domain.AuthService, c Controllers, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(auth, logger)

	route := func(path, method, operation string, handler http.HandlerFunc) {
		mux.HandleFunc(path, middleware.Metrics(middleware.AllowMethods(method)(handler), operation))
	}

	// API Routes
	route("/auth-check", http.MethodGet, "auth_check", requireAuth(c.Auth.AuthCheck))
	route("/get-events", http.MethodGet, "get_events", requireAuth(c.Events.ListEvents))
	route("/create-event", http.MethodPost, "create_event", requireAuth(c.Events.CreateEvent))
	route("/cleanup-events", http.MethodDelete, "cleanup_events", requireAuth(c.Events.CleanupEvents))
	route("/upload-file", http.MethodPost, "upload_file", requireAuth(c.Upload.UploadFile))
	route("/login-user", http.MethodPost, "login_user", c.Auth.Login)

	// Operations
	mux.HandleFunc("GET /healthz", healthz)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		h.WriteJSONError(w, http.StatusNotFound, "not found")
	})

	return middleware.LoggingMiddleware(logger,
		middleware.CORS(allowedOrigins,
			middleware.Recovery(logger, mux)))
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
