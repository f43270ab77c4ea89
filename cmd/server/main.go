package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"bellehair/internal/config"
	httpapi "bellehair/internal/http"
	"bellehair/internal/repository"
	"bellehair/internal/service"
)

func main() {
	// .env is optional; the environment wins either way.
	_ = godotenv.Load()
	cfg := config.FromEnv()

	store := repository.NewMemoryStore(repository.SeedProducts(), repository.SeedUsers())

	catalogSvc := service.NewCatalogService(store)
	authSvc := service.NewAuthService(store)
	paymentsSvc := service.NewPaymentService(store, service.PaymentConfig{
		SuccessProbability: cfg.PaymentSuccessProbability,
		Delay:              cfg.PaymentDelay,
	}, nil)

	srv := httpapi.NewServer(catalogSvc, authSvc, paymentsSvc, cfg.AllowedOrigins)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
