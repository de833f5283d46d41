// Package bus fans ingested records out to downstream consumers such as
// broker adapters.
package bus

import (
	"context"
	"time"
)

// Event is the message published after a record is persisted.
type Event struct {
	Collection  string    `json:"collection"`
	ID          string    `json:"id"`
	Record      any       `json:"record"`
	PublishedAt time.Time `json:"published_at"`
}

type Publisher interface {
	Publish(ctx context.Context, evt Event) error
	Close() error
}

// Nop drops every event. It is used when no broker URL is configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }
