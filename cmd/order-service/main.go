package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/spicegarden/order-service/internal/api"
	"github.com/spicegarden/order-service/internal/api/handlers"
	"github.com/spicegarden/order-service/internal/config"
	"github.com/spicegarden/order-service/internal/gateway"
	"github.com/spicegarden/order-service/internal/repository"
	"github.com/spicegarden/order-service/internal/service"
	"github.com/spicegarden/order-service/pkg/db"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	conn, err := db.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer conn.Close()

	if cfg.MigrationsDir != "" {
		if err := db.RunMigrations(conn, cfg.MigrationsDir); err != nil {
			log.Fatalf("migrations: %v", err)
		}
	}

	// One gateway client for the process lifetime, injected into the service.
	gw := gateway.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	menuRepo := repository.NewMenuRepo(conn)
	orderRepo := repository.NewOrderRepo(conn)
	svc := service.NewOrderService(menuRepo, orderRepo, gw,
		cfg.StrictPricing, cfg.QueryTimeout, cfg.GatewayTimeout)

	handler := api.NewRouter(handlers.NewOrderHandler(svc), cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("starting order-service on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped")
}
