package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher is the fire-and-forget notification channel. Implementations do not
// surface delivery confirmations to the caller.
type Publisher interface {
	Publish(ctx context.Context, exchange string, routingKey string, payload []byte) error
}

type RabbitMQPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *slog.Logger
}

func NewRabbitMQPublisher(url string, exchange string, logger *slog.Logger) (*RabbitMQPublisher, error) {
	var conn *amqp.Connection
	var err error

	// Retry connection because RabbitMQ takes time to start in Docker
	for i := 0; i < 10; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		logger.Warn("failed to connect to RabbitMQ, retrying in 2s", "attempt", i+1)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"direct", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &RabbitMQPublisher{
		conn:    conn,
		channel: ch,
		logger:  logger,
	}, nil
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, exchange string, routingKey string, payload []byte) error {
	err := p.channel.PublishWithContext(ctx,
		exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			MessageId:    uuid.NewString(),
			ContentType:  "text/plain",
			Body:         payload,
			DeliveryMode: amqp.Persistent,
		})

	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	p.logger.Info("published message", "exchange", exchange, "routing_key", routingKey)
	return nil
}

func (p *RabbitMQPublisher) Close() {
	p.channel.Close()
	p.conn.Close()
}
