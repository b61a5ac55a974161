package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prioboard/internal/app"
	"prioboard/internal/coda"
	"prioboard/internal/config"
	"prioboard/internal/export"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	ctx := context.Background()

	client := coda.NewClient(cfg.CodaBaseURL, cfg.CodaToken, cfg.CodaDocID, cfg.CodaTableID)
	service := app.New(cfg, client)

	if cfg.Configured() {
		if err := service.Refresh(ctx); err != nil {
			log.Printf("WARNING: initial fetch failed (refresh manually): %v", err)
		}
	} else {
		log.Printf("WARNING: Coda credentials not configured, views will show a configuration error")
	}

	exporter := export.New(cfg.ExportURL, cfg.SettleDelay)
	httpServer := app.NewHTTPServer(service, exporter)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		// The export route holds the connection while Chrome captures every
		// view, so the write timeout is generous.
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("prioboard listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
