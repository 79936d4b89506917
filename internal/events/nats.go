package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/domain"
	"github.com/nats-io/nats.go"
)

// Subjects for published events.
const (
	subjectOrderCreated  = "orders.created"
	subjectProductPrefix = "products."
)

// NatsPublisher publishes events to a NATS server.
type NatsPublisher struct {
	conn *nats.Conn
}

// NewNatsPublisher connects to the NATS server at url.
func NewNatsPublisher(url string) (*NatsPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("rabbit-doughnut-server"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NatsPublisher{conn: conn}, nil
}

// Close drains the connection.
func (p *NatsPublisher) Close() error {
	return p.conn.Drain()
}

func (p *NatsPublisher) OrderCreated(ctx context.Context, order *domain.Order) error {
	return p.publish(subjectOrderCreated, order)
}

func (p *NatsPublisher) ProductEvent(ctx context.Context, event string, product *domain.Product) error {
	return p.publish(productSubject(event), product)
}

// productSubject maps an event name like "product.created" to the NATS
// subject "products.created". Names without the "product." prefix are
// published under the prefix as-is rather than panicking on a short name.
func productSubject(event string) string {
	return subjectProductPrefix + strings.TrimPrefix(event, "product.")
}

func (p *NatsPublisher) publish(subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}
	return nil
}
