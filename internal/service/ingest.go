package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hedgeapi/internal/backtest"
	"hedgeapi/internal/models"
)

type SignalService struct {
	Docs *DocumentService
	Now  func() time.Time
}

// Ingest stores a signal, stamping generated_at with the current UTC time
// when the producer left it out.
func (s *SignalService) Ingest(ctx context.Context, sig *models.Signal, opts CreateOptions) (CreateResult, error) {
	if sig.GeneratedAt == nil {
		now := s.now().UTC()
		sig.GeneratedAt = &now
	}
	opts.Publish = true
	return s.Docs.Create(ctx, models.CollectionSignal, sig, opts)
}

func (s *SignalService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

type TradeService struct {
	Docs *DocumentService
}

func (s *TradeService) Record(ctx context.Context, trade *models.Trade, opts CreateOptions) (CreateResult, error) {
	opts.Publish = true
	res, err := s.Docs.Create(ctx, models.CollectionTrade, trade, opts)
	if err != nil || res.Replayed {
		return res, err
	}
	s.Docs.log().Info("trade recorded",
		zap.String("id", res.ID),
		zap.Stringp("broker", trade.Broker),
		zap.Stringp("symbol", trade.Symbol),
		zap.String("status", trade.Status),
		zap.String("notional", trade.Notional().String()),
	)
	return res, nil
}

type BacktestService struct {
	Docs   *DocumentService
	Engine backtest.Engine
}

// Run records the request for audit and then asks the engine for a result.
// A failed audit write fails the call.
func (s *BacktestService) Run(ctx context.Context, req *models.BacktestRequest) (models.BacktestResult, error) {
	if _, err := s.Docs.Create(ctx, models.CollectionBacktestRequest, req, CreateOptions{}); err != nil {
		return models.BacktestResult{}, err
	}
	engine := s.Engine
	if engine == nil {
		engine = backtest.StaticEngine{}
	}
	return engine.Run(ctx, *req)
}
