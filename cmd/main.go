package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gamewell/gamewell-backend/internal/app"
	"github.com/gamewell/gamewell-backend/internal/observability"
	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
)

func main() {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	log, err := logger.New(logMode, logLevel)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	a, err := app.New(log)
	if err != nil {
		log.Error("App init failed", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	shutdownTracing := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "gamewell-backend",
		Environment: a.Cfg.Environment,
	})
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	if err := a.Run(); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
