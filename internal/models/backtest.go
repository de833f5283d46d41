package models

import (
	"encoding/json"
	"time"
)

const DefaultInitialCapital = 10000.0

// BacktestRequest is persisted for audit on every /backtest call. Start and
// End are not checked against each other.
type BacktestRequest struct {
	ID             string    `json:"id,omitempty" bson:"_id,omitempty"`
	StrategyCode   *string   `json:"strategy_code" bson:"strategy_code" binding:"required"`
	Symbol         *string   `json:"symbol" bson:"symbol" binding:"required"`
	Timeframe      string    `json:"timeframe" bson:"timeframe" binding:"required,oneof=1m 5m 15m 1h 4h 1d"`
	Start          time.Time `json:"start" bson:"start" binding:"required"`
	End            time.Time `json:"end" bson:"end" binding:"required"`
	InitialCapital float64   `json:"initial_capital" bson:"initial_capital"`
	Timestamps     `bson:",inline"`
}

func (r *BacktestRequest) UnmarshalJSON(b []byte) error {
	type alias BacktestRequest
	v := alias{InitialCapital: DefaultInitialCapital}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = BacktestRequest(v)
	return nil
}

type BacktestResult struct {
	TotalReturnPct float64 `json:"total_return_pct"`
	Sharpe         float64 `json:"sharpe"`
	MaxDrawdownPct float64 `json:"max_drawdown_pct"`
	Trades         int     `json:"trades"`
}
