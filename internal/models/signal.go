package models

import (
	"encoding/json"
	"time"
)

// Signal is a trade idea emitted by a strategy. StrategyID is a soft
// reference: it is never checked against the strategy collection.
type Signal struct {
	ID          string         `json:"id,omitempty" bson:"_id,omitempty"`
	StrategyID  *string        `json:"strategy_id" bson:"strategy_id" binding:"required"`
	Symbol      *string        `json:"symbol" bson:"symbol" binding:"required"`
	Side        string         `json:"side" bson:"side" binding:"required,oneof=buy sell"`
	Confidence  float64        `json:"confidence" bson:"confidence" binding:"gte=0,lte=1"`
	Price       *float64       `json:"price" bson:"price"`
	Quantity    *float64       `json:"quantity" bson:"quantity"`
	Metadata    map[string]any `json:"metadata" bson:"metadata"`
	GeneratedAt *time.Time     `json:"generated_at" bson:"generated_at"`
	Timestamps  `bson:",inline"`
}

func (s *Signal) UnmarshalJSON(b []byte) error {
	type alias Signal
	v := alias{
		Confidence: 0.5,
		Metadata:   map[string]any{},
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v.Metadata == nil {
		v.Metadata = map[string]any{}
	}
	*s = Signal(v)
	return nil
}
