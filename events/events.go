// Package events announces business lifecycle changes to other services.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

// Routing keys
const (
	BusinessRegistered    = "business.registered"
	BusinessStatusChanged = "business.status_changed"
)

// Event is the JSON body of every published message
type Event struct {
	Type       string    `json:"type"`
	BusinessID uint      `json:"businessId"`
	UserID     uint      `json:"userId,omitempty"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher sends events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop discards every event; used when no broker is configured
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// AMQP publishes to a durable topic exchange
type AMQP struct {
	conn     *amqp091.Connection
	mu       sync.Mutex
	ch       *amqp091.Channel
	exchange string
}

// DialAMQP connects to url and declares the exchange
func DialAMQP(url, exchange string) (*AMQP, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &AMQP{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *AMQP) Publish(ctx context.Context, e Event) error {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}
	body, err := json.Marshal(e)
	if err != nil {
		return err
	}

	// amqp091 channels must not be shared between concurrent publishers
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.PublishWithContext(ctx, p.exchange, e.Type, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    e.OccurredAt,
		Body:         body,
	})
}

func (p *AMQP) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ch.Close()
	return p.conn.Close()
}

// Notify publishes e and logs, rather than returns, any failure. A broker
// outage never fails the request that triggered the event.
func Notify(ctx context.Context, p Publisher, e Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, e); err != nil {
		log.Printf("event %s for business %d not published: %v", e.Type, e.BusinessID, err)
	}
}
