// Package amqpnotify delivers notifications by publishing them to an AMQP
// exchange. A downstream consumer per delivery channel picks them up and
// pushes them to the recipient.
package amqpnotify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"tradematch/internal/core/domain/model/kernel"
	"tradematch/internal/core/ports"
	"tradematch/internal/pkg/errs"
)

// envelope is the queued wire format for one notification.
type envelope struct {
	RecipientID int64  `json:"recipient_id"`
	Text        string `json:"text"`
	OrderID     int64  `json:"order_id,omitempty"`
	ClaimToken  string `json:"claim_token,omitempty"`
}

// Publisher implements ports.Notifier over an AMQP topic exchange.
// Messages are published persistent with the recipient id as routing key, so
// consumers can bind per-recipient or with a wildcard.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// NewPublisher dials the broker and declares the exchange.
func NewPublisher(url, exchange string) (*Publisher, error) {
	if url == "" {
		return nil, errs.NewValueIsRequiredError("url")
	}
	if exchange == "" {
		return nil, errs.NewValueIsRequiredError("exchange")
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	return &Publisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
	}, nil
}

// Notify publishes one notification to the exchange.
func (p *Publisher) Notify(ctx context.Context, recipient kernel.UserID, notification ports.Notification) error {
	if err := recipient.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(envelope{
		RecipientID: recipient.Int64(),
		Text:        notification.Text,
		OrderID:     notification.OrderID,
		ClaimToken:  notification.ClaimToken,
	})
	if err != nil {
		return err
	}

	routingKey := "notify." + recipient.String()
	return p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		ContentType:  "application/json",
		Body:         body,
	})
}

// Close releases the channel and connection.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
