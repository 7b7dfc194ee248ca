package main

import (
	"fmt"
	"net/http"
	"order-management-demo/internal/client"
	"order-management-demo/internal/config"
	"order-management-demo/internal/handler"
	"order-management-demo/internal/logging"
	"order-management-demo/internal/repository"
	"order-management-demo/internal/server"
	"order-management-demo/internal/service"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log)

	db := client.InitSqliteClient(cfg.DatabaseDSN)

	publisher, err := client.NewRabbitMQPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, logger)
	if err != nil {
		logger.Error("failed to set up RabbitMQ publisher", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	orderService := service.NewOrderService(db, orderRepo, paymentRepo, publisher, cfg.RabbitMQ)
	orderHandler := handler.NewOrderHandler(orderService, logger)

	srv := server.NewServer(orderHandler)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	logger.Info("starting HTTP server", "addr", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
		os.Exit(1)
	}
}
