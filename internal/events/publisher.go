// AngelaMos | 2026
// publisher.go

package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/carterperez-dev/sports-academy/internal/config"
)

const (
	KeyEnrollmentCompleted = "enrollment.completed"

	publishTimeout = 5 * time.Second
)

var ErrPublisherClosed = errors.New("event publisher closed")

type Publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
	Close() error
}

// AMQPPublisher sends JSON messages to a durable topic exchange. A channel
// closed by the broker is re-established on the next publish.
type AMQPPublisher struct {
	mu       sync.Mutex
	url      string
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	closed   bool
}

// New returns an AMQP publisher when an events URL is configured and a
// no-op publisher otherwise.
func New(cfg config.EventsConfig) (Publisher, error) {
	if cfg.URL == "" {
		return Nop{}, nil
	}
	return NewAMQPPublisher(cfg.URL, cfg.Exchange)
}

func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	p := &AMQPPublisher{url: url, exchange: exchange}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

// connect must be called with mu held or before the publisher is shared.
func (p *AMQPPublisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close() //nolint:errcheck // cleanup on channel failure
		return fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()   //nolint:errcheck // cleanup on declare failure
		_ = conn.Close() //nolint:errcheck // cleanup on declare failure
		return fmt.Errorf("declare exchange: %w", err)
	}

	p.conn = conn
	p.ch = ch
	return nil
}

func (p *AMQPPublisher) ensureChannel() error {
	if p.closed {
		return ErrPublisherClosed
	}
	if p.ch != nil && !p.ch.IsClosed() {
		return nil
	}

	p.release()
	if err := p.connect(); err != nil {
		return fmt.Errorf("reconnect: %w", err)
	}
	return nil
}

func (p *AMQPPublisher) release() {
	if p.ch != nil {
		_ = p.ch.Close() //nolint:errcheck // channel may already be closed
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close() //nolint:errcheck // connection may already be closed
		p.conn = nil
	}
}

// PublishJSON is safe for concurrent use; amqp channels are not.
func (p *AMQPPublisher) PublishJSON(ctx context.Context, key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureChannel(); err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}

	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.ch != nil {
		_ = p.ch.Close() //nolint:errcheck // connection close follows
		p.ch = nil
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

type Nop struct{}

func (Nop) PublishJSON(context.Context, string, any) error { return nil }

func (Nop) Close() error { return nil }
