package service

import (
	"context"
	"time"

	"github.com/serviceflow/serviceflow-api/internal/modules/model"
	"go.uber.org/zap"
)

// Routing keys for domain events.
const (
	EventBookingCreated    = "booking.created"
	EventSubscriberCreated = "subscriber.created"
)

// EventPublisher is satisfied by *mq.Publisher.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, body any) error
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, any) error { return nil }

// NopPublisher drops every event. It is used when RabbitMQ is disabled.
func NopPublisher() EventPublisher { return nopPublisher{} }

type BookingCreatedEvent struct {
	BookingID   uint            `json:"booking_id"`
	ProjectID   uint            `json:"project_id"`
	ServiceID   uint            `json:"service_id"`
	BookingTime model.LocalTime `json:"booking_time"`
	ClientName  string          `json:"client_name"`
	ClientEmail *string         `json:"client_email,omitempty"`
	ClientPhone string          `json:"client_phone"`
	Status      string          `json:"status"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

type SubscriberCreatedEvent struct {
	SubscriberID uint      `json:"subscriber_id"`
	ProjectID    uint      `json:"project_id"`
	Email        string    `json:"email"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// publishEvent never fails the caller; the row is already committed.
func publishEvent(ctx context.Context, pub EventPublisher, log *zap.Logger, routingKey string, body any) {
	if err := pub.Publish(ctx, routingKey, body); err != nil {
		log.Sugar().Warnw("publish event failed", "routing_key", routingKey, "err", err)
	}
}
