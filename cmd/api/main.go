package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"health-companion/internal/config"
	"health-companion/internal/platform/logger"
	"health-companion/internal/router"

	"github.com/joho/godotenv"
)

// @title Health Companion API
// @version 1.0
// @description Catálogo de medicamentos y remedios, recomendaciones por síntoma y clasificación de urgencia.
// @BasePath /
func main() {
	// .env es opcional (dev); en deploy las variables vienen del entorno
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
		Env:    cfg.Env,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := router.LoadCatalog(ctx, router.CatalogOptions{
		DSN:     cfg.DatabaseDSN,
		URL:     cfg.CatalogURL,
		Path:    cfg.CatalogPath,
		Timeout: cfg.CatalogTimeout,
		Strict:  cfg.StrictCatalog,
	}, log)
	if err != nil {
		log.Error("catalog load failed", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	r := router.NewRouter(router.Options{
		Logger:             log,
		Catalog:            cat,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		MaxSymptoms:        cfg.MaxSymptoms,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		return
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}
