package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wizard-duel/internal/config"
	"wizard-duel/internal/hub"
	"wizard-duel/internal/logger"
	"wizard-duel/internal/server"
	"wizard-duel/internal/telemetry"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	shutdownTelemetry, err := telemetry.InitOtel(cfg.OTLPCollector)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			slog.Error("error shutting down telemetry", "error", err)
		}
	}()

	logger.Init()

	h := hub.NewHub()
	go h.Run(ctx)

	srv := server.NewServer(h, cfg)

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: srv.Engine(),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("http server started", "addr", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	slog.Info("shutting down server")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	slog.Info("server exiting")
}
