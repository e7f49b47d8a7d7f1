package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "repo-gateway/docs"
	"repo-gateway/internal/application/service"
	"repo-gateway/internal/config"
	"repo-gateway/internal/domain/repo"
	"repo-gateway/internal/github"
	infraGitHub "repo-gateway/internal/infrastructure/github"
	"repo-gateway/internal/logging"
	"repo-gateway/internal/metrics"
	"repo-gateway/internal/middleware"
	"repo-gateway/internal/presentation/handlers"
	"repo-gateway/internal/tracing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

// @title Repo Gateway API
// @version 1.0
// @description A read-only gateway over GitHub repository data

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	configPath := pflag.String("config", "", "path to a YAML config file (environment variables override it)")
	addr := pflag.String("addr", "", "listen address host:port, overrides SERVER_HOST and SERVER_PORT")
	help := pflag.BoolP("help", "h", false, "show usage")
	pflag.Parse()

	if *help {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	listenAddr := cfg.GetServerAddress()
	if *addr != "" {
		listenAddr = *addr
	}

	logger := logging.NewLogger(logging.Config{
		Format:     cfg.Logging.Format,
		Level:      cfg.Logging.Level,
		Output:     cfg.Logging.Output,
		FilePath:   cfg.Logging.FilePath,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
		Compress:   cfg.Logging.Compress,
	})

	if !cfg.HasGitHubToken() {
		logger.Warn("GITHUB_API_TOKEN not set, using unauthenticated GitHub access")
	}

	// Observability
	collector, err := metrics.NewCollector(cfg.Metrics.Enabled, cfg.Metrics.Namespace)
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	shutdownTracing, err := tracing.NewTracerProvider(tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		Endpoint:     cfg.Tracing.Endpoint,
		Insecure:     cfg.Tracing.Insecure,
		SamplingRate: cfg.Tracing.SamplingRate,
		ServiceName:  cfg.Tracing.ServiceName,
		Version:      version,
		Environment:  cfg.Tracing.Environment,
		Timeout:      cfg.Tracing.Timeout,
	}, logger)
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	// Initialize infrastructure layer
	// A fresh upstream client per request; nothing mutable is shared
	githubFactory := func() (repo.GitHubService, error) {
		client, err := github.NewClient(&cfg.GitHub)
		if err != nil {
			return nil, err
		}
		return infraGitHub.NewGitHubService(client, collector), nil
	}

	// Initialize application layer
	repositoryService := service.NewRepositoryService(githubFactory)

	// Initialize presentation layer
	healthHandler := handlers.NewHealthHandler(version, cfg.GitHub.BaseURL)
	repositoryHandler := handlers.NewRepositoryHandler(repositoryService)

	gin.SetMode(cfg.Server.Mode)

	// Initialize router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger))
	router.Use(middleware.Metrics(collector))
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.FaultHandler(logger))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)

		gh := v1.Group("/github")
		{
			gh.GET("/repositories/:username", repositoryHandler.GetUserRepositories)
			gh.GET("/stars/:username", repositoryHandler.GetUserTotalStars)
		}
	}

	if cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(collector.Handler()))
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create HTTP server
	server := &http.Server{
		Addr:         listenAddr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server starting", "addr", listenAddr, "version", version)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if err := shutdownTracing(ctx); err != nil {
		logger.Error("tracer provider shutdown failed", "error", err)
	}

	logger.Info("server exited")
}
