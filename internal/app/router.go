package app

import (
	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/handlers"
	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func setupRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	setupMiddleware(r, logger)
	setupRoutes(r, deps)

	return r
}

func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Idempotency-Key", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(metrics.Middleware)
	r.Use(middleware.Compress(5))
}

func setupRoutes(r *chi.Mux, deps *dependencies) {
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(deps.jwtManager))

		r.Route("/data", func(r chi.Router) {
			r.Post("/purchase", deps.handlers.purchase.Purchase)
			r.Post("/bulk-purchase", deps.handlers.purchase.BulkPurchase)
			r.Get("/prices", deps.handlers.purchase.Prices)
			r.Get("/orders", deps.handlers.orders.ListOrders)
			r.Get("/orders/{id}", deps.handlers.orders.GetOrder)
		})

		r.Get("/wallet/balance", deps.handlers.wallet.GetBalance)
		r.Get("/wallet/transactions", deps.handlers.wallet.ListTransactions)

		r.Route("/admin", func(r chi.Router) {
			r.Use(handlers.AdminMiddleware)
			r.Put("/orders/{id}/status", deps.handlers.admin.OverrideStatus)
			r.Get("/inventory", deps.handlers.admin.ListInventory)
			r.Put("/inventory/{network}", deps.handlers.admin.UpdateInventory)
			r.Post("/users/{id}/wallet/credit", deps.handlers.admin.CreditWallet)
		})
	})
}
