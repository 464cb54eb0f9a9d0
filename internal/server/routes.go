package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"whatis/internal/cache"
	"whatis/internal/db"
	"whatis/internal/handlers"
	"whatis/internal/handlers/api"
	"whatis/internal/metrics"
	"whatis/internal/middleware"
	"whatis/internal/resolver"
)

// RegisterRoutes wires the resolver and registers all application routes.
// termCache may be nil when no redis URL is configured; lookups then go
// straight to the database.
func (s *Server) RegisterRoutes(database *db.DB, termCache *cache.Store) {
	var store resolver.TermStore = database
	if termCache != nil {
		store = termCache
	}

	res := resolver.New(store, database, resolver.Options{
		Threshold: s.Cfg.SimilarityThreshold,
		OnLogFailure: func(err error) {
			metrics.RecordLogAppendFailure()
			slog.Error("failed to append query log", "error", err)
		},
	})

	// Initialize middleware
	slackVerifier := middleware.NewSlackVerifier(s.Cfg.SlackSigningSecret)

	// Initialize handlers
	slashHandler := handlers.NewSlashHandler(res)
	adminHandler := handlers.NewAdminHandler(database)
	termHandler := api.NewTermHandler(database, termCache)
	analyticsHandler := api.NewAnalyticsHandler(database)
	seedHandler := api.NewSeedHandler(database, s.Cfg)

	// Health check
	s.App.Get("/", handlers.Health)

	// Slash command - signature verification must run before any store access
	s.App.Post("/slack/whatis", slackVerifier.Verify, slashHandler.WhatIs)

	// Admin dashboard
	s.App.Get("/admin", adminHandler.Dashboard)

	// Admin JSON API
	s.App.Get("/admin/terms", termHandler.List)
	s.App.Post("/admin/terms", termHandler.Create)
	s.App.Get("/admin/terms/:term", termHandler.Get)
	s.App.Put("/admin/terms/:term", termHandler.Update)
	s.App.Delete("/admin/terms/:term", termHandler.Delete)
	s.App.Get("/admin/analytics", analyticsHandler.Overview)
	s.App.Post("/admin/seed", seedHandler.Seed)

	// Prometheus metrics
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
