package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apibridge/tsgen/internal/config"
	"github.com/apibridge/tsgen/internal/demoapi"
	"github.com/apibridge/tsgen/internal/devserver"
	"github.com/apibridge/tsgen/internal/diag"
	"github.com/apibridge/tsgen/internal/generator"
	"github.com/apibridge/tsgen/internal/schema"
)

// defaultLocator is where the demo API registers itself when TSGEN_API is
// not configured.
const defaultLocator = "demo.api"

func main() {
	// Parse command line flags
	showVersion := flag.Bool("version", false, "Display version information")
	flag.Parse()

	// Show version information if requested
	if *showVersion {
		log.Printf("tsgen v%s\n", Version)
		log.Printf("Git commit: %s\n", GitCommit)
		log.Printf("Build time: %s\n", BuildTime)
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	// Initialize configuration; the demo app fills in both generation
	// settings so it works out of the box.
	cfg := config.NewConfig()
	if cfg.APILocator == "" {
		cfg.APILocator = defaultLocator
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./client"
	}

	logger.Info("starting tsgen dev server", "version", Version, "commit", GitCommit)

	// Pre-flight configuration gate
	enabled := true
	for _, d := range diag.CheckConfig(cfg) {
		if d.Severity == diag.SeverityError {
			enabled = false
			logger.Error("configuration check failed", "id", d.ID, "message", d.Message)
		} else {
			logger.Warn("configuration check", "id", d.ID, "message", d.Message)
		}
	}

	// Build the demo API and expose its schema under the configured locator
	api, mux := demoapi.New(cfg.Version)
	provider := schema.NewHumaProvider(api)
	schema.Register(cfg.APILocator, provider)
	devserver.RegisterDocsEndpoints(mux, provider)

	server := devserver.New(cfg.ServerAddress, mux, logger)
	if enabled {
		inv := generator.New(cfg, generator.WithLogger(logger))
		server.OnPreStart(inv.Run)
	} else {
		logger.Warn("client generation disabled by configuration errors")
	}

	// Start server in a goroutine so it doesn't block signal handling
	go func() {
		if err := server.Start(context.Background()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	sctx, scancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer scancel()

	if err := server.Shutdown(sctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
