package main

import (
	"log"

	"go.uber.org/zap"

	"taskflow/internal/config"
	"taskflow/internal/logger"
	"taskflow/internal/server"
)

// @title           TaskFlow API
// @version         1.0
// @description     Tasks grouped under team projects and personal categories.

// @host      localhost:8000
// @BasePath  /

// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	s, err := server.Init(cfg, zl)
	if err != nil {
		zl.Fatal("server initialization failed", zap.Error(err))
	}

	s.Run()
}
