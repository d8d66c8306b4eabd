package rest

import (
	"database/sql"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/frahmantamala/checkout-payments/internal"
	"github.com/frahmantamala/checkout-payments/internal/payment"
	"github.com/frahmantamala/checkout-payments/internal/transport/middleware"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, paymentHandler *payment.Handler, cfg *internal.Config, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)
	configHandler := NewConfigHandler(cfg.Stripe.PublishableKey, logger)

	// Apply global middleware. Security headers go first so every response,
	// including errors from later middleware, carries them.
	router.Use(middleware.SecurityHeaders)
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Route("/api", func(r chi.Router) {
		r.Get("/config", configHandler.GetConfig)

		r.Route("/payments", func(pr chi.Router) {
			pr.Post("/create-intent", paymentHandler.CreateIntent)
			pr.Post("/record-result", paymentHandler.RecordResult)
		})

		r.Route("/v1", func(hr chi.Router) {
			hr.Get("/health", healthHandler.healthCheckHandler)
			hr.Get("/ping", healthHandler.pingHandler)
		})
	})

	// Kept at the root path for compatibility with the deployed front-end.
	router.Get("/get-all-payments", paymentHandler.GetAllPayments)

	staticDir := cfg.Server.StaticDir
	if staticDir == "" {
		staticDir = "./web"
	}
	indexFile := filepath.Join(staticDir, "index.html")

	// Generic error fallback: serve the root document and let the SPA route.
	router.Get("/error", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, indexFile)
	})

	fileServer := http.FileServer(http.Dir(staticDir))
	router.Handle("/*", fileServer)
}
