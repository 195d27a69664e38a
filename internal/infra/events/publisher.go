package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"havenmart/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	queueOrderPlaced   = "order.placed"
	queueTicketReplied = "ticket.replied"
)

// Publisher pushes domain events onto durable RabbitMQ queues. A nil
// Publisher (no AMQP URL configured) silently drops events; command
// handlers already treat publish failures as non-fatal.
type Publisher struct {
	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewPublisher(amqpURL string) (*Publisher, func(), error) {
	if amqpURL == "" {
		slog.Info("event publishing disabled, no AMQP URL configured")
		return nil, func() {}, nil
	}

	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to dial amqp broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("failed to open amqp channel: %w", err)
	}

	for _, name := range []string{queueOrderPlaced, queueTicketReplied} {
		if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, nil, fmt.Errorf("failed to declare queue %s: %w", name, err)
		}
	}

	p := &Publisher{conn: conn, ch: ch}
	cleanup := func() {
		_ = p.ch.Close()
		_ = p.conn.Close()
	}
	return p, cleanup, nil
}

func (p *Publisher) PublishOrderPlaced(ctx context.Context, event commands.OrderPlacedEvent) error {
	return p.publish(ctx, queueOrderPlaced, event)
}

func (p *Publisher) PublishTicketReplied(ctx context.Context, event commands.TicketRepliedEvent) error {
	return p.publish(ctx, queueTicketReplied, event)
}

func (p *Publisher) publish(ctx context.Context, queue string, event any) error {
	if p == nil {
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", queue, err)
	}

	// amqp channels are not safe for concurrent publishes.
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ch.PublishWithContext(ctx,
		"",    // default exchange
		queue, // routing key = queue name
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}
