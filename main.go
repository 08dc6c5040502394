package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"internhours/config"
	"internhours/database"
	"internhours/handlers"
	"internhours/logger"
	"internhours/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger.Init(logger.Config{Debug: cfg.Debug, LogFile: cfg.LogFile})

	// Initialize JWT secret
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Initialize database
	if err := database.Init(cfg.DatabaseURL); err != nil {
		logger.Fatal("failed to initialize database", "err", err)
	}

	db := database.GetDB()
	entries := database.NewEntries(db)
	preferences := database.NewPreferences(db)
	users := database.NewUsers(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg, users)
	entryHandler := handlers.NewEntryHandler(entries)
	progressHandler := handlers.NewProgressHandler(cfg, entries, preferences)

	// Setup router
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	router.Get("/healthz", handlers.Health)

	// Public routes
	router.Post("/auth/register", authHandler.Register)
	router.Post("/auth/login", authHandler.Login)

	// Protected routes
	router.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware)

		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/auth/me", authHandler.Me)

		r.Get("/entries", entryHandler.List)
		r.Post("/entries", entryHandler.Create)
		r.Get("/entries/export", entryHandler.ExportCSV)
		r.Put("/entries/{id}", entryHandler.Update)
		r.Delete("/entries/{id}", entryHandler.Delete)

		r.Get("/progress", progressHandler.Progress)
		r.Get("/preferences", progressHandler.GetPreferences)
		r.Put("/preferences", progressHandler.UpdatePreferences)
	})

	logger.Info("server starting", "port", cfg.ServerPort)
	if err := http.ListenAndServe(":"+cfg.ServerPort, router); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}
