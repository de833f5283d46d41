package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	cronrunner "hedgeapi/internal/cron"
	"hedgeapi/internal/handler"
	"hedgeapi/internal/logger"

	_ "hedgeapi/docs"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(parent context.Context, opts *rootOptions) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := newApp(ctx, cfg, log)
	defer a.close()

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(handler.CORS())
	engine.Use(handler.RequestLogger(log))

	(&handler.RootHandler{Diagnostics: a.diagnostics}).Register(engine)
	(&handler.HealthHandler{Repo: a.repo, Configured: a.storeConfigured(), Timeout: cfg.Probe.Timeout}).Register(engine)
	(&handler.UserHandler{Docs: a.docs}).Register(engine)
	(&handler.StrategyHandler{Docs: a.docs}).Register(engine)
	(&handler.SignalHandler{Signals: a.signals}).Register(engine)
	(&handler.TradeHandler{Trades: a.trades}).Register(engine)
	(&handler.WebhookHandler{Docs: a.docs}).Register(engine)
	(&handler.BacktestHandler{Backtests: a.backtests}).Register(engine)

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	cron := cronrunner.New(log, ctx)
	probe := &cronrunner.StoreProbe{Repo: a.repo, Timeout: cfg.Probe.Timeout, Logger: log}
	if _, err := cron.Add(cfg.Probe.Interval, probe.Run); err != nil {
		log.Warn("cron register store probe failed", zap.Error(err))
	}
	probe.Run(ctx)
	cron.Start()
	defer cron.Stop()

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
		return err
	}

	timeout := cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
