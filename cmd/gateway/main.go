package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/commercekit/amazon-pay-gateway/internal/application/services"
	"github.com/commercekit/amazon-pay-gateway/internal/config"
	"github.com/commercekit/amazon-pay-gateway/internal/infrastructure/mws"
	"github.com/commercekit/amazon-pay-gateway/internal/infrastructure/postgres"
	"github.com/commercekit/amazon-pay-gateway/internal/interfaces/rest"
	"github.com/commercekit/amazon-pay-gateway/internal/interfaces/rest/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting amazon pay gateway",
		"port", cfg.Server.Port,
		"region", cfg.Provider.Region,
		"test_mode", cfg.Provider.TestMode,
		"api_url", cfg.Provider.APIURL(),
	)

	ctx := context.Background()
	db, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	orderRepo := postgres.NewOrderRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)

	clientFactory := mws.NewFactory(cfg.Provider)

	gateway := services.NewGatewayService(
		orderRepo,
		paymentRepo,
		transactionRepo,
		clientFactory,
		cfg.Provider.TestMode,
		logger,
	)

	h := rest.NewPaymentHandler(gateway)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	handler := middleware.Recovery(logger)(mux)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
