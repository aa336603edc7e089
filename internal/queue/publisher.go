package queue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// PublishNotification publishes a NotificationMessage to the
// notification.send queue, assigning a message ref when the caller left
// it empty. Messages are marked persistent so they survive broker
// restarts. Errors are logged and returned so callers can ignore them
// without interrupting the main request flow: a lost notification never
// fails the registration or invitation that triggered it.
func PublishNotification(ctx context.Context, msg NotificationMessage, log zerolog.Logger) error {
	if msg.MessageRef == "" {
		msg.MessageRef = uuid.NewString()
	}
	if msg.RequestedAt == "" {
		msg.RequestedAt = time.Now().UTC().Format(time.RFC3339)
	}

	conn, err := amqp.Dial(BrokerURL())
	if err != nil {
		log.Warn().Err(err).Msg("rabbitmq: dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Warn().Err(err).Msg("rabbitmq: channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(notificationQueueName, true, false, false, false, nil); err != nil {
		log.Warn().Err(err).Msg("rabbitmq: queue declare failed")
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		log.Warn().Err(err).Msg("rabbitmq: marshal message failed")
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.MessageRef,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",                    // default exchange
		notificationQueueName, // routing key = queue name
		false,                 // mandatory
		false,                 // immediate
		pub,
	); err != nil {
		log.Warn().Err(err).Msg("rabbitmq: publish failed")
		return err
	}
	return nil
}
