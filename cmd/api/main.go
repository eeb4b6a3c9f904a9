package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go-guardconsole/internal/app"
	"go-guardconsole/internal/bootstrap"
	"go-guardconsole/internal/config"
	"go-guardconsole/internal/logging"
	"go-guardconsole/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	apperror.Init()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	auditLogger := bootstrap.NewStdoutAuditLogger(logger)

	// build dependency + routes
	cleanup, err := app.BuildApp(r, cfg, logger, auditLogger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	server := bootstrap.NewServer(r, bootstrap.ServerConfig{
		Port:            cfg.Port,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    cfg.UpstreamTimeout + 10*time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, auditLogger, logger)
	server.OnShutdown(cleanup)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
