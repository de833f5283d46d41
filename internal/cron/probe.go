package cronrunner

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"hedgeapi/internal/metrics"
	"hedgeapi/internal/repository"
)

// StoreProbe pings the document store, keeps the store_up gauge current and
// logs state changes. It only reads.
type StoreProbe struct {
	Repo    repository.Repository
	Timeout time.Duration
	Logger  *zap.Logger

	mu    sync.Mutex
	known bool
	up    bool
}

func (p *StoreProbe) Run(ctx context.Context) {
	up := p.check(ctx)
	if up {
		metrics.StoreUp.Set(1)
	} else {
		metrics.StoreUp.Set(0)
	}

	p.mu.Lock()
	changed := !p.known || p.up != up
	p.known, p.up = true, up
	p.mu.Unlock()

	if changed && p.Logger != nil {
		if up {
			p.Logger.Info("document store reachable")
		} else {
			p.Logger.Warn("document store unreachable")
		}
	}
}

// Up reports the result of the last run.
func (p *StoreProbe) Up() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.up
}

func (p *StoreProbe) check(ctx context.Context) bool {
	if p.Repo == nil {
		return false
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := p.Repo.Ping(ctx); err != nil {
		if p.Logger != nil {
			p.Logger.Debug("store ping failed", zap.Error(err))
		}
		return false
	}
	return true
}
