package amqp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"budget-watch/internal/models"

	"github.com/rabbitmq/amqp091-go"
)

var ErrNilAlert = errors.New("alert cannot be nil")

const publishTimeout = 5 * time.Second

// channel is the part of *amqp091.Channel the publisher needs
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// AlertPublisher delivers budget alerts to a durable RabbitMQ queue
type AlertPublisher struct {
	conn         *amqp091.Connection
	channel      channel
	exchangeName string
	queueName    string
}

// NewAlertPublisher dials the broker and declares the exchange, queue and binding
func NewAlertPublisher(url, exchangeName, queueName string) (*AlertPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareTopology(ch, exchangeName, queueName); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to set up exchange and queue: %w", err)
	}

	return &AlertPublisher{
		conn:         conn,
		channel:      ch,
		exchangeName: exchangeName,
		queueName:    queueName,
	}, nil
}

func declareTopology(ch *amqp091.Channel, exchangeName, queueName string) error {
	if err := ch.ExchangeDeclare(
		exchangeName, // name
		"direct",     // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(queueName, queueName, exchangeName, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// SendAlert publishes the alert as a persistent JSON message
func (p *AlertPublisher) SendAlert(ctx context.Context, alert *models.BudgetAlert) error {
	if alert == nil {
		return ErrNilAlert
	}

	body, err := NewBudgetAlertMessage(alert).ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal alert message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchangeName, // exchange
		p.queueName,    // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    alert.ID.String(),
			Timestamp:    time.Now(),
			Type:         string(alert.AlertType),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish alert: %w", err)
	}

	slog.InfoContext(ctx, "budget alert published",
		slog.String("alert_id", alert.ID.String()),
		slog.String("alert_type", string(alert.AlertType)),
		slog.String("exchange", p.exchangeName),
		slog.String("queue", p.queueName),
	)

	return nil
}

// Close closes the channel and the connection
func (p *AlertPublisher) Close() error {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
