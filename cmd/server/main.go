package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Harshitk-cp/tenantdesk/internal/api"
	"github.com/Harshitk-cp/tenantdesk/internal/buildconfig"
	"github.com/Harshitk-cp/tenantdesk/internal/config"
	"github.com/Harshitk-cp/tenantdesk/internal/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := config.Load(); err != nil {
		panic(err)
	}

	logger := newLogger(config.LogLevel())
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	build := buildconfig.Current()
	shutdownTracing := telemetry.Setup(ctx, build.Service, build.Version,
		config.OTLPEndpoint(), config.OTLPInsecure(), logger)

	app, err := api.NewApp(api.Options{
		DemoPassword:     config.DemoPassword(),
		BcryptCost:       config.BcryptCost(),
		DefaultTenant:    config.DefaultTenant(),
		InitialLoadDelay: config.InitialLoadDelay(),
		RefreshInterval:  config.AnalyticsRefreshInterval(),
		RateLimitRPS:     config.RateLimitRPS(),
		RateLimitBurst:   config.RateLimitBurst(),
		AllowedOrigins:   config.CORSAllowedOrigins(),
	}, logger)
	if err != nil {
		logger.Fatal("failed to initialize app", zap.Error(err))
	}

	// Start background services
	app.Refresher.Start()
	go app.RateLimiter.RunCleanup(ctx, 10*time.Minute)

	addr := config.ServerAddr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           otelhttp.NewHandler(app.Router, build.Service),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server starting",
			zap.String("addr", addr),
			zap.String("version", build.Version),
			zap.String("commit", build.Commit))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("shutting down server")

	// Stop background services
	app.Refresher.Stop()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warn("tracer shutdown failed", zap.Error(err))
	}

	logger.Info("server stopped")
}

func newLogger(level string) *zap.Logger {
	var cfg zap.Config
	if level == "debug" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
