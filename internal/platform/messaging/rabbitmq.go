package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQ is the broker-backed bus adapter. The command service publishes
// to a topic exchange; the query service declares one durable queue per
// routing key and consumes with manual acknowledgment, so a failed handler
// leads to broker redelivery.
type RabbitMQ struct {
	conn     *amqp.Connection
	exchange string
	logger   *slog.Logger

	// amqp channels are not safe for concurrent publishing.
	mu      sync.Mutex
	pubChan *amqp.Channel
}

func NewRabbitMQ(url, exchange string, logger *slog.Logger) (*RabbitMQ, error) {
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	pubChan, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}

	if err := pubChan.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = pubChan.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &RabbitMQ{
		conn:     conn,
		exchange: exchange,
		logger:   logger,
		pubChan:  pubChan,
	}, nil
}

func (b *RabbitMQ) Publish(ctx context.Context, routingKey string, body []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	err := b.pubChan.PublishWithContext(ctx,
		b.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	b.logger.Debug("message published",
		"event", "amqp_publish",
		"module", "internal/platform/messaging",
		"layer", "platform",
		"routing_key", routingKey,
	)
	return nil
}

// Subscribe declares the durable queue, binds it to the exchange under the
// routing key, and consumes on a dedicated channel until ctx is done.
func (b *RabbitMQ) Subscribe(ctx context.Context, queue, routingKey string, handler Handler) error {
	ch, err := b.conn.Channel()
	if err != nil {
		return fmt.Errorf("open amqp channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		return fmt.Errorf("declare queue %s: %w", queue, err)
	}

	if err := ch.QueueBind(queue, routingKey, b.exchange, false, nil); err != nil {
		_ = ch.Close()
		return fmt.Errorf("bind queue %s to %s: %w", queue, routingKey, err)
	}

	deliveries, err := ch.Consume(
		queue,
		"",    // consumer tag
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		return fmt.Errorf("consume %s: %w", queue, err)
	}

	go func() {
		defer ch.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				if err := handler(ctx, delivery.Body); err != nil {
					b.logger.Error("message handler failed, requeueing",
						"event", "amqp_handler_failed",
						"module", "internal/platform/messaging",
						"layer", "platform",
						"queue", queue,
						"routing_key", routingKey,
						"error", err.Error(),
					)
					_ = delivery.Nack(false, true)
					continue
				}
				_ = delivery.Ack(false)
			}
		}
	}()

	b.logger.Info("queue bound",
		"event", "amqp_queue_bound",
		"module", "internal/platform/messaging",
		"layer", "platform",
		"queue", queue,
		"routing_key", routingKey,
	)
	return nil
}

func (b *RabbitMQ) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.pubChan != nil {
		_ = b.pubChan.Close()
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}
