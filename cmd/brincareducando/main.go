// Package main is the entry point for the Brincar Educando server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brincareducando/internal/cache"
	"brincareducando/internal/catalog"
	"brincareducando/internal/config"
	"brincareducando/internal/content"
	"brincareducando/internal/database"
	"brincareducando/internal/handlers"
	"brincareducando/internal/render"
	"brincareducando/internal/router"
	"brincareducando/internal/scroll"
	"brincareducando/internal/session"
	"brincareducando/internal/store"
	"brincareducando/internal/webhook"
)

func main() {
	// Structured logger — outputs text with debug level everywhere; the
	// site has no high-volume surfaces to justify sampling.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"content_dir", cfg.ContentDir,
	)

	// Connect to PostgreSQL (theme queue).
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Connect to Valkey (page cache, browsing sessions, scroll records).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// In non-development environments, mark session cookies as Secure.
	secureCookies := !cfg.IsDev()
	sessions := session.NewStore(valkeyClient, secureCookies)
	scrollStore := scroll.NewStore(valkeyClient, 0)
	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)

	// Content store reads posts, landings and products from disk.
	contentStore := content.NewDirStore(cfg.ContentDir)

	// The featured carousel auto-advances its window in the background.
	carousel := catalog.NewCarousel(contentStore.Featured(0))
	carousel.AutoAdvance()
	defer carousel.Stop()

	// Initialize the HTML template renderer.
	renderer, err := render.New(cfg.SiteName, cfg.SiteURL)
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	themeStore := store.NewThemeStore(db)
	webhookClient := webhook.NewClient(cfg.WebhookURL)
	if cfg.WebhookURL == "" {
		slog.Warn("n8n webhook not configured — theme console cannot trigger drafts")
	}

	// Create handler groups with their dependencies.
	publicHandlers := handlers.NewPublic(renderer, contentStore, carousel, pageCache)
	scrollHandlers := handlers.NewScroll(sessions, scrollStore)
	adminHandlers := handlers.NewAdmin(renderer, themeStore, webhookClient)

	// Set up the Chi router with all middleware and routes.
	r := router.New(publicHandlers, scrollHandlers, adminHandlers, router.Options{
		AdminToken: cfg.AdminToken,
		PublicDir:  cfg.PublicDir,
	})

	// Create the HTTP server with sensible timeouts. The webhook call in
	// the theme console waits on n8n, so writes get headroom.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
