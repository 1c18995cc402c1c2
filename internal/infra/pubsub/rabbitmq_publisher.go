package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"jobtrack/internal/domain/service"
	"jobtrack/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
)

// rabbitMQPublisher implements EventPublisher on a durable RabbitMQ queue
type rabbitMQPublisher struct {
	conn    *amqp.Connection
	mu      sync.Mutex // amqp channels are not safe for concurrent publishing
	channel *amqp.Channel
	queue   string
	logger  *slog.Logger
}

// NewRabbitMQPublisher dials the broker and declares the event queue
func NewRabbitMQPublisher(url, queue string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to open rabbitmq channel")
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrapf(err, "failed to declare queue %s", queue)
	}

	return &rabbitMQPublisher{
		conn:    conn,
		channel: ch,
		queue:   queue,
		logger:  logger,
	}, nil
}

// Publish sends the event as a persistent JSON message
func (p *rabbitMQPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
		Headers:      attributesToHeaders(eventAttributes(event)),
		Body:         body,
	}

	p.mu.Lock()
	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, msg)
	p.mu.Unlock()
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Debug("[RabbitMQ] Event published",
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
	)

	return nil
}

// Close closes the underlying channel and connection
func (p *rabbitMQPublisher) Close() error {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return errors.WithStack(p.conn.Close())
	}

	return nil
}

func attributesToHeaders(attrs map[string]string) amqp.Table {
	headers := make(amqp.Table, len(attrs))
	for key, value := range attrs {
		headers[key] = value
	}

	return headers
}
