package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vivopizza/internal/clock"
	"vivopizza/internal/config"
	"vivopizza/internal/database"
	"vivopizza/internal/domain"
	"vivopizza/internal/server"
	"vivopizza/internal/services"
)

const (
	shutdownTimeout = 30 * time.Second
	readTimeout     = 15 * time.Second
	writeTimeout    = 15 * time.Second
	idleTimeout     = 60 * time.Second
	connectTimeout  = 15 * time.Second
)

func main() {
	log.SetPrefix("[API] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Starting %s v%s", cfg.App.Name, cfg.App.Version)
	log.Printf("Environment: debug=%v, port=%s, host=%s, store=%s", cfg.App.Debug, cfg.App.Port, cfg.App.Host, cfg.Database.Driver())

	log.Println("Initializing document store...")
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), connectTimeout)
	store, err := database.Open(connectCtx, &cfg.Database)
	cancelConnect()
	if err != nil {
		log.Fatalf("Failed to initialize document store: %v", err)
	}
	defer func() {
		log.Println("Closing document store...")
		if err := store.Close(); err != nil {
			log.Printf("Error closing document store: %v", err)
		}
	}()

	log.Println("Initializing services...")
	regions := domain.NewRegions(cfg.Regions)
	inquirySvc := services.NewInquiryService(store, regions, clock.NewSystem())
	healthSvc := services.NewHealthService(cfg.App.Name, regions)

	log.Println("Mounting HTTP handlers...")
	handler := server.NewHandler(cfg, server.New(inquirySvc, healthSvc))

	httpServer := &http.Server{
		Addr:         cfg.App.Addr(),
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
		ErrorLog:     log.New(os.Stderr, "[HTTP] ", log.LstdFlags),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server error: %w", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Printf("Server failed to start: %v", err)
		return
	case sig := <-shutdown:
		log.Printf("Received signal: %v. Starting graceful shutdown...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("Error during graceful shutdown: %v", err)
		if errors.Is(err, context.DeadlineExceeded) {
			log.Println("Shutdown timeout exceeded, forcing close...")
			_ = httpServer.Close()
		}
	}

	log.Println("Server shutdown complete")
}
