package bus

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// NATSPublisher publishes events on <prefix>.<collection>.
type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
}

func NewNATS(url, prefix string, logger *zap.Logger) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("hedgeapi"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if logger != nil && err != nil {
				logger.Warn("nats disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			if logger != nil {
				logger.Info("nats reconnected", zap.String("url", c.ConnectedUrl()))
			}
		}),
	)
	if err != nil {
		return nil, err
	}
	prefix = strings.Trim(strings.TrimSpace(prefix), ".")
	if prefix == "" {
		prefix = "hedge"
	}
	return &NATSPublisher{conn: nc, prefix: prefix}, nil
}

func (p *NATSPublisher) Subject(collection string) string {
	return p.prefix + "." + collection
}

func (p *NATSPublisher) Publish(ctx context.Context, evt Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if evt.PublishedAt.IsZero() {
		evt.PublishedAt = time.Now().UTC()
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return p.conn.Publish(p.Subject(evt.Collection), b)
}

func (p *NATSPublisher) Close() error {
	if p == nil || p.conn == nil {
		return nil
	}
	return p.conn.Drain()
}
