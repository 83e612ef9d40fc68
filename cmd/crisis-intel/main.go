package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/orionhq/crisis-intel/internal/analyzer"
	"github.com/orionhq/crisis-intel/internal/api"
	"github.com/orionhq/crisis-intel/internal/catalog"
	"github.com/orionhq/crisis-intel/internal/config"
	"github.com/orionhq/crisis-intel/internal/events"
	"github.com/orionhq/crisis-intel/internal/feed"
	"github.com/orionhq/crisis-intel/internal/geo"
	"github.com/orionhq/crisis-intel/internal/logging"
	"github.com/orionhq/crisis-intel/internal/matching"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	slog.Info("Server starting", "host", cfg.Server.Host, "port", cfg.Server.Port)

	store, err := catalog.NewStore(cfg.DB.Path)
	if err != nil {
		logging.Fatalf("Failed to initialize catalog store: %v", err)
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := store.SeedIfEmpty(ctx, catalog.Seed()); err != nil {
		logging.Fatalf("Failed to seed catalog: %v", err)
	}

	resources, err := store.LoadAll(ctx)
	if err != nil {
		logging.Fatalf("Failed to load catalog: %v", err)
	}
	holder := catalog.NewHolder(catalog.NewSnapshot(resources))
	slog.Info("catalog loaded", "resources", len(resources))

	broadcaster := events.NewBroadcaster()

	// Availability feed: applies updates to the store and refreshes the
	// snapshot the matcher reads.
	mgr := feed.NewManager(store, holder, broadcaster, cfg.Feed.Workers, cfg.Feed.BufferSize, cfg.Feed.RefreshInterval)
	mgr.Start(ctx)

	var extractor analyzer.Analyzer
	if cfg.Anthropic.APIKey != "" {
		extractor = analyzer.NewClaude(cfg.Anthropic.APIKey, cfg.Anthropic.Model)
		slog.Info("using anthropic analyzer", "model", cfg.Anthropic.Model)
	} else {
		extractor = analyzer.NewKeyword()
		slog.Warn("ANTHROPIC_API_KEY not set, using offline keyword analyzer")
	}

	selector := matching.NewSelector(holder, geo.Alappuzha())

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false, // Set to false when using wildcard origins
	}))
	router.Use(api.RateLimitMiddleware(cfg.API.RateLimitRPS))

	handler := api.NewHandler(selector, extractor, holder, broadcaster, mgr)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")

	cancel()
	mgr.Stop()
	broadcaster.Close()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
}
