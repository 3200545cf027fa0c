package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"gametracker/backend/internal/catalog"
	"gametracker/backend/internal/config"
	"gametracker/backend/internal/gamestate"
	"gametracker/backend/internal/handlers"
	"gametracker/backend/internal/llm"
	_ "gametracker/backend/internal/llm/gemini"
	"gametracker/backend/internal/metrics"
	"gametracker/backend/internal/prompts"
	"gametracker/backend/internal/routers"
	"gametracker/backend/internal/store"
	"gametracker/backend/internal/store/gormstore"
	"gametracker/backend/internal/store/jsonfile"
	"gametracker/backend/internal/suggest"
)

func openStore(cfg *config.Config, logger *zap.Logger) (store.Store, error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
			return nil, err
		}
		return gormstore.OpenSQLite(cfg.SQLitePath)
	case config.BackendPostgres:
		return gormstore.OpenPostgres(cfg.PostgresDSN)
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.JSONPath), 0o755); err != nil {
			return nil, err
		}
		return jsonfile.New(cfg.JSONPath)
	}
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	logger.Info("Configuration loaded",
		zap.String("storage_backend", cfg.StorageBackend),
		zap.String("ai_provider", cfg.AIProvider))

	st, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open storage backend", zap.Error(err))
	}
	defer st.Close()

	promptManager, err := prompts.NewManager()
	if err != nil {
		logger.Fatal("Failed to initialize prompt manager", zap.Error(err))
	}

	catalogClient := catalog.New(cfg.CatalogBaseURL, cfg.CatalogAPIKey)
	listService := gamestate.NewService(st, logger)

	// the AI provider is optional: without credentials the suggestion
	// routes are not mounted and the rest of the app works normally
	aiProvider, err := llm.NewProvider(cfg.AIProvider)
	if err != nil {
		logger.Warn("AI provider unavailable, suggestion routes disabled", zap.Error(err))
		aiProvider = nil
	}

	authHandler := handlers.NewAuthHandler(st, cfg.JWTSecret, logger)
	userHandler := handlers.NewUserHandler(st, logger)
	listHandler := handlers.NewListHandler(listService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogClient, logger)
	healthHandler := handlers.NewHealthHandler(st, aiProvider, promptManager, cfg)

	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	router.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Logger, chimiddleware.Recoverer, chimiddleware.Timeout(60*time.Second))
	router.Use(metrics.Middleware())

	routers.HealthRoutes(router, healthHandler)
	routers.AuthRoutes(router, authHandler)
	routers.UserRoutes(router, userHandler, cfg.JWTSecret)
	routers.ListRoutes(router, listHandler, cfg.JWTSecret)
	routers.CatalogRoutes(router, catalogHandler, cfg.JWTSecret)
	router.Handle("/metrics", metrics.Handler())

	if aiProvider != nil {
		suggestService := suggest.NewService(st, catalogClient, aiProvider, promptManager, logger)
		suggestHandler := handlers.NewSuggestHandler(suggestService, listService, logger)
		routers.SuggestRoutes(router, suggestHandler, cfg.JWTSecret)
	}

	serverAddr := ":" + cfg.Port

	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("GameTracker backend starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("GameTracker backend shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("GameTracker backend exited")
}
