// Command shopapi runs a local stand-in for the external shop service the
// storefront talks to: the catalog endpoint and the order endpoint, backed
// by an in-memory product repository.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shopfront/shopfront/internal/config"
	"github.com/shopfront/shopfront/internal/handlers"
	"github.com/shopfront/shopfront/internal/repository"
	"github.com/shopfront/shopfront/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer zlog.Sync()

	seed := repository.DefaultSeed()
	if cfg.SeedFile != "" {
		seed, err = repository.LoadSeed(cfg.SeedFile)
		if err != nil {
			zlog.Fatal("failed to load seed catalog", zap.Error(err))
		}
	}
	repo := repository.NewInMemoryProductRepository(seed)

	zlog.Info("starting shop api server",
		zap.String("host", cfg.Host),
		zap.String("port", cfg.Port),
		zap.Int("catalog_size", len(seed)),
	)

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handlers.NewRouter(repo, zlog),
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}

	go func() {
		zlog.Info("server listening", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}

	zlog.Info("server stopped gracefully")
}
