package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventsgateway/config"
	_ "eventsgateway/docs"
	"eventsgateway/internal/adapters/auth"
	"eventsgateway/internal/adapters/provider"
	"eventsgateway/internal/adapters/storage"
	deliveryhttp "eventsgateway/internal/delivery/http"
	"eventsgateway/internal/delivery/http/controllers"
	"eventsgateway/internal/domain"
	"eventsgateway/internal/repository/postgres"
	"eventsgateway/internal/services"
)

// @title Events Gateway API
// @version 1.0
// @description HTTP functions in front of a managed auth, row store and blob storage platform.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	log := config.NewLogger(cfg.Environment)
	if err := cfg.Validate(); err != nil {
		log.Error("Invalid config", "error", err)
		os.Exit(1)
	}

	client := provider.NewClient(cfg.ProviderURL, cfg.ProviderAnonKey, &http.Client{Timeout: cfg.ProviderTimeout})
	identity := provider.NewIdentity(client)

	var resolver domain.IdentityResolver = identity
	if cfg.IdentityVerifier == config.BackendJWT {
		resolver = auth.NewJWTVerifier(cfg.ProviderJWTSecret)
	}

	var events domain.EventStore = provider.NewEventStore(client)
	if cfg.RowStore == config.BackendPostgres {
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			log.Error("Failed to open database connection", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		pingCtx, cancel := context.WithTimeout(context.Background(), cfg.ProviderTimeout)
		err = db.PingContext(pingCtx)
		cancel()
		if err != nil {
			log.Error("Failed to reach database", "error", err)
			os.Exit(1)
		}
		events = postgres.NewEventRepository(db)
	}

	var blobs domain.BlobStore = provider.NewBlobStore(client, cfg.StorageBucket)
	if cfg.BlobStore == config.BackendS3 {
		blobs = storage.NewS3Store(storage.S3Config{
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Bucket:          cfg.StorageBucket,
			PublicBaseURL:   cfg.PublicBaseURL,
		})
	}

	authSvc := services.NewAuthService(resolver, identity)
	eventSvc := services.NewEventService(events, cfg.StaleEventAge, time.Now)
	uploadSvc := services.NewUploadService(blobs, time.Now)

	router := deliveryhttp.NewRouter(log, authSvc, deliveryhttp.Controllers{
		Auth:   controllers.NewAuthController(log, authSvc),
		Events: controllers.NewEventController(log, eventSvc),
		Upload: controllers.NewUploadController(log, uploadSvc, cfg.MaxUploadBytes),
	}, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("HTTP server listening",
			"address", srv.Addr,
			"identity", cfg.IdentityVerifier,
			"rows", cfg.RowStore,
			"blobs", cfg.BlobStore,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Failed to serve HTTP", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", "error", err)
	}
}
