package models

// WebhookEvent is a raw callback from an external provider, e.g. a
// TradingView alert. The payload has no schema.
type WebhookEvent struct {
	ID         string         `json:"id,omitempty" bson:"_id,omitempty"`
	Broker     *string        `json:"broker" bson:"broker" binding:"required"`
	Payload    map[string]any `json:"payload" bson:"payload" binding:"required"`
	Timestamps `bson:",inline"`
}
