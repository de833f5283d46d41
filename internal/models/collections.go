package models

import (
	"strings"
	"time"
)

// Collection names are the lowercased entity type names.
const (
	CollectionUser            = "user"
	CollectionStrategy        = "strategy"
	CollectionSignal          = "signal"
	CollectionTrade           = "trade"
	CollectionWebhookEvent    = "webhookevent"
	CollectionBacktestRequest = "backtestrequest"
)

// Timestamps are stamped by the document store on insert.
type Timestamps struct {
	CreatedAt *time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

const (
	SideBuy  = "buy"
	SideSell = "sell"
)

func nullIfBlank(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	return v
}
