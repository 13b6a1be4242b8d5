package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2/log"
	amqp "github.com/rabbitmq/amqp091-go"
)

type (
	Publisher interface {
		Publish(ctx context.Context, event Event) error
	}

	amqpPublisher struct {
		url string
	}

	noopPublisher struct{}
)

// NewPublisher returns a no-op publisher when url is empty.
func NewPublisher(url string) Publisher {
	if url == "" {
		return noopPublisher{}
	}
	return &amqpPublisher{url: url}
}

func (p *amqpPublisher) Publish(ctx context.Context, event Event) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Warnw("rabbitmq dial failed", "error", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Warnw("rabbitmq channel open failed", "error", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(ActivityQueue, true, false, false, false, nil); err != nil {
		log.Warnw("rabbitmq queue declare failed", "error", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(ctx, "", ActivityQueue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         event.Type,
		Body:         body,
	})
}

func (noopPublisher) Publish(context.Context, Event) error {
	return nil
}

// PublishAsync fires the event in the background so request latency never
// depends on the broker.
func PublishAsync(p Publisher, event Event) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.Publish(ctx, event); err != nil {
			log.Warnw("activity event dropped", "type", event.Type, "user_id", event.UserID, "error", err)
		}
	}()
}
