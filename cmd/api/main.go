package main

import (
	"log"

	_ "fightreel_quotes/docs"
	"fightreel_quotes/internal/adapter/http/routes"
	"fightreel_quotes/internal/config"
	"fightreel_quotes/internal/logger"
	"fightreel_quotes/internal/metrics"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           FightReel Quotes API
// @version         1.0
// @description     Production quote engine (pricing, quote lifecycle and payments) backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger.InitLoggerWithConfig(logger.LoggerConfig{
		Level:       cfg.LogLevel,
		Stage:       cfg.Stage,
		EnableJSON:  cfg.Stage == logger.ProdStage,
		EnableColor: cfg.Stage != logger.ProdStage,
	})
	defer func() { _ = logger.Sync() }()

	metrics.RegisterDefault()

	if err := routes.Run(cfg); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
