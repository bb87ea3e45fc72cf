package main

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sefazor/premium-checkout/internal/config"
	"github.com/sefazor/premium-checkout/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load .env (opsiyonel, production'da env doğrudan gelir)
	envErr := godotenv.Load()
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", envErr)
	}

	// Config'i yükle
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync(zapLogger)

	if envErr != nil {
		zapLogger.Debug("no .env file found, using process environment")
	}

	app, err := InitializeAPI(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize API", zap.Error(err))
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		zapLogger.Info("shutting down server")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			zapLogger.Error("graceful shutdown failed", zap.Error(err))
		}
	}()

	zapLogger.Info("starting server",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.Env),
		zap.String("success_url", cfg.Checkout.SuccessURL),
		zap.String("cancel_url", cfg.Checkout.CancelURL),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
