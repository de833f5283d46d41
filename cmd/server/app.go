package main

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"hedgeapi/internal/backtest"
	"hedgeapi/internal/bus"
	"hedgeapi/internal/cache"
	"hedgeapi/internal/config"
	"hedgeapi/internal/db"
	"hedgeapi/internal/repository"
	gormrepository "hedgeapi/internal/repository/gorm"
	memoryrepository "hedgeapi/internal/repository/memory"
	mongorepository "hedgeapi/internal/repository/mongo"
	"hedgeapi/internal/service"
)

// app owns every long-lived client. It is built once at startup and torn
// down by close.
type app struct {
	cfg    config.Config
	logger *zap.Logger

	db        *db.DB
	repo      repository.Repository
	openErr   error
	cache     cache.Store
	publisher bus.Publisher

	docs        *service.DocumentService
	signals     *service.SignalService
	trades      *service.TradeService
	backtests   *service.BacktestService
	diagnostics *service.DiagnosticsService

	closers []func()
}

func newApp(ctx context.Context, cfg config.Config, logger *zap.Logger) *app {
	a := &app{cfg: cfg, logger: logger}
	a.openStore(ctx)
	a.openCache()
	a.openPublisher()

	a.docs = &service.DocumentService{
		Repo:      a.repo,
		Logger:    logger,
		Timeout:   cfg.Database.OpTimeout,
		Cache:     a.cache,
		CacheTTL:  cfg.Idempotency.TTL,
		Publisher: a.publisher,
	}
	a.signals = &service.SignalService{Docs: a.docs}
	a.trades = &service.TradeService{Docs: a.docs}
	a.backtests = &service.BacktestService{Docs: a.docs, Engine: backtest.StaticEngine{}}
	driver := ""
	if a.db != nil {
		driver = a.db.Driver
	}
	a.diagnostics = &service.DiagnosticsService{
		Repo:    a.repo,
		URLSet:  a.storeConfigured(),
		OpenErr: a.openErr,
		Name:    cfg.Database.Name,
		Driver:  driver,
		Timeout: cfg.Database.OpTimeout,
		Logger:  logger,
	}
	return a
}

// storeConfigured reports whether a store was asked for, even if opening it
// failed.
func (a *app) storeConfigured() bool {
	return strings.TrimSpace(a.cfg.Database.URL) != "" || a.openErr != nil
}

// openStore leaves repo nil when no store is configured or the client
// cannot be created; the API still serves and reports the store as missing
// or unreachable.
func (a *app) openStore(ctx context.Context) {
	conn, err := db.Open(ctx, a.cfg.Database)
	if err != nil {
		if errors.Is(err, db.ErrNotConfigured) {
			a.logger.Warn("database not configured; writes will fail and lists return empty")
		} else {
			a.logger.Error("database open failed", zap.Error(err))
			a.openErr = err
		}
		return
	}
	a.db = conn
	a.closers = append(a.closers, func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Database.ConnectTimeout)
		defer cancel()
		if err := db.Close(closeCtx, conn); err != nil {
			a.logger.Warn("database close failed", zap.Error(err))
		}
	})

	switch conn.Driver {
	case db.DriverMongo:
		a.repo = mongorepository.New(conn.MongoDB)
	case db.DriverPostgres:
		if err := db.AutoMigrate(conn); err != nil {
			a.logger.Warn("auto-migrate failed", zap.Error(err))
		}
		a.repo = gormrepository.New(conn.Gorm)
	default:
		a.repo = memoryrepository.New()
	}
	a.logger.Info("document store ready", zap.String("driver", conn.Driver), zap.String("database", a.cfg.Database.Name))
}

func (a *app) openCache() {
	url := strings.TrimSpace(a.cfg.Redis.URL)
	if url == "" {
		a.cache = cache.NewMemoryStore()
		return
	}
	store, err := cache.NewRedisStoreFromURL(url, "hedge:idem:")
	if err != nil {
		a.logger.Warn("redis config invalid; using in-memory idempotency keys", zap.Error(err))
		a.cache = cache.NewMemoryStore()
		return
	}
	a.cache = store
	a.closers = append(a.closers, func() {
		if err := store.Close(); err != nil {
			a.logger.Warn("redis close failed", zap.Error(err))
		}
	})
}

func (a *app) openPublisher() {
	url := strings.TrimSpace(a.cfg.NATS.URL)
	if url == "" {
		a.publisher = bus.Nop{}
		return
	}
	pub, err := bus.NewNATS(url, a.cfg.NATS.SubjectPrefix, a.logger)
	if err != nil {
		a.logger.Warn("nats connect failed; events disabled", zap.Error(err))
		a.publisher = bus.Nop{}
		return
	}
	a.publisher = pub
	a.closers = append(a.closers, func() {
		if err := pub.Close(); err != nil {
			a.logger.Warn("nats drain failed", zap.Error(err))
		}
	})
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
