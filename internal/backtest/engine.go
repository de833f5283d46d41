// Package backtest is the boundary to the strategy execution engine.
package backtest

import (
	"context"

	"hedgeapi/internal/models"
)

// Engine runs a strategy over a market-data window and reports its
// performance. A real implementation receives strategy_code, symbol,
// timeframe, start, end and initial_capital from the request.
type Engine interface {
	Run(ctx context.Context, req models.BacktestRequest) (models.BacktestResult, error)
}

// FixedResult is what StaticEngine returns for every request.
var FixedResult = models.BacktestResult{
	TotalReturnPct: 12.4,
	Sharpe:         1.1,
	MaxDrawdownPct: 6.2,
	Trades:         42,
}

// StaticEngine is a placeholder that ignores its input. No computation
// happens here until an external engine is integrated.
type StaticEngine struct{}

func (StaticEngine) Run(ctx context.Context, _ models.BacktestRequest) (models.BacktestResult, error) {
	if err := ctx.Err(); err != nil {
		return models.BacktestResult{}, err
	}
	return FixedResult, nil
}
