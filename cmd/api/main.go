package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "settlement_console/docs"
	"settlement_console/internal/adapter/http/routes"
	"settlement_console/internal/app"
	"settlement_console/internal/infrastructure/config"
	"settlement_console/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Settlement Console API
// @version         1.0
// @description     Back office for field-service orders, settlements, technician KPIs and parts sales.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("[app][bootstrap] failed", zap.Error(err))
	}
	if err := routes.Run(ctx, a); err != nil {
		log.Fatal("[http][server] failed", zap.Error(err))
	}
}
