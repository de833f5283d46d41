package models

import "encoding/json"

const (
	StrategyModePaper = "paper"
	StrategyModeLive  = "live"

	StrategyStatusDraft  = "draft"
	StrategyStatusActive = "active"
	StrategyStatusPaused = "paused"
)

// Strategy is a user-defined trading strategy. Risk limits are only checked
// when the record is validated; nothing enforces them at execution time.
type Strategy struct {
	ID                     string   `json:"id,omitempty" bson:"_id,omitempty"`
	Name                   *string  `json:"name" bson:"name" binding:"required"`
	Description            *string  `json:"description" bson:"description"`
	AssetClass             string   `json:"asset_class" bson:"asset_class" binding:"required,oneof=forex futures stocks options crypto"`
	Symbols                []string `json:"symbols" bson:"symbols" binding:"required,min=1"`
	Timeframe              string   `json:"timeframe" bson:"timeframe" binding:"required,oneof=1m 5m 15m 1h 4h 1d"`
	Mode                   string   `json:"mode" bson:"mode" binding:"oneof=paper live"`
	Status                 string   `json:"status" bson:"status" binding:"oneof=draft active paused"`
	RiskPerTradePct        float64  `json:"risk_per_trade_pct" bson:"risk_per_trade_pct" binding:"gte=0.1,lte=5"`
	MaxConcurrentPositions int      `json:"max_concurrent_positions" bson:"max_concurrent_positions" binding:"gte=1,lte=20"`
	Code                   *string  `json:"code" bson:"code"`
	OwnerEmail             *string  `json:"owner_email" bson:"owner_email" binding:"omitempty,email"`
	Timestamps             `bson:",inline"`
}

func (s *Strategy) UnmarshalJSON(b []byte) error {
	type alias Strategy
	v := alias{
		Mode:                   StrategyModePaper,
		Status:                 StrategyStatusDraft,
		RiskPerTradePct:        1.0,
		MaxConcurrentPositions: 3,
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = Strategy(v)
	return nil
}
