package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

const (
	TradeStatusSubmitted = "submitted"
	TradeStatusFilled    = "filled"
	TradeStatusRejected  = "rejected"
	TradeStatusCanceled  = "canceled"
	TradeStatusError     = "error"
)

// Trade is an execution log entry reported by a broker adapter. Any status
// may be written directly; transitions are not tracked.
type Trade struct {
	ID         string   `json:"id,omitempty" bson:"_id,omitempty"`
	Broker     *string  `json:"broker" bson:"broker" binding:"required"`
	StrategyID *string  `json:"strategy_id" bson:"strategy_id"`
	Symbol     *string  `json:"symbol" bson:"symbol" binding:"required"`
	Side       string   `json:"side" bson:"side" binding:"required,oneof=buy sell"`
	Qty        *float64 `json:"qty" bson:"qty" binding:"required"`
	Price      *float64 `json:"price" bson:"price"`
	Status     string   `json:"status" bson:"status" binding:"oneof=submitted filled rejected canceled error"`
	OrderID    *string  `json:"order_id" bson:"order_id"`
	Error      *string  `json:"error" bson:"error"`
	Timestamps `bson:",inline"`
}

func (t *Trade) UnmarshalJSON(b []byte) error {
	type alias Trade
	v := alias{Status: TradeStatusSubmitted}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*t = Trade(v)
	return nil
}

// Notional is qty*price, or zero when either is unknown.
func (t Trade) Notional() decimal.Decimal {
	if t.Qty == nil || t.Price == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*t.Qty).Mul(decimal.NewFromFloat(*t.Price))
}
