package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"whatis/internal/cache"
	"whatis/internal/config"
	"whatis/internal/db"
	"whatis/internal/handlers/api"
	"whatis/internal/metrics"
	"whatis/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Seed the glossary on startup when asked (dev convenience)
	if cfg.SeedOnStart {
		seeds, err := api.SeedSource(cfg)
		if err != nil {
			log.Fatalf("Failed to load seed glossary: %v", err)
		}
		inserted, err := database.SeedTerms(ctx, seeds)
		if err != nil {
			log.Fatalf("Failed to seed glossary: %v", err)
		}
		log.Printf("Seeded glossary with %d new terms", inserted)
	}

	// Optional redis term cache
	var termCache *cache.Store
	if cfg.RedisURL != "" {
		termCache = cache.New(database, cfg.RedisURL)
		defer termCache.Close()
		log.Println("Term cache enabled")
	}

	// Register metrics collectors
	metrics.Init(database)

	// Build the server and routes
	srv := server.New(cfg)
	srv.RegisterRoutes(database, termCache)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
