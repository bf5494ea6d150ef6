package events

import (
	"context"
	"vehicle-booking-service/internal/module/booking/models/entity"
	"vehicle-booking-service/internal/pkg/errors"
	"vehicle-booking-service/internal/pkg/helpers"
	"vehicle-booking-service/internal/pkg/log"
	"vehicle-booking-service/internal/pkg/metadata"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/goccy/go-json"
)

const (
	BookingCreated   = "BookingCreated"
	BookingCompleted = "BookingCompleted"
)

// Message metadata keys, next to watermill's correlation_id.
const (
	CausationIDKey = "causation_id"
	EventTypeKey   = "event_type"
	ServiceKey     = "service"
	DomainKey      = "domain"
)

type Publisher interface {
	Publish(ctx context.Context, eventType string, booking entity.VehicleBooking, md metadata.ServiceMetadata) error
}

type Payload struct {
	BookingID     string                 `json:"bookingId"`
	UserID        string                 `json:"userId"`
	StartDate     string                 `json:"startDate"`
	EndDate       string                 `json:"endDate"`
	Status        entity.Status          `json:"status"`
	Vehicle       *entity.Vehicle        `json:"vehicle,omitempty"`
	Options       *entity.BookingOptions `json:"options,omitempty"`
	ServicePlanID *string                `json:"servicePlanId,omitempty"`
}

type Event struct {
	Type     string                   `json:"type"`
	Payload  Payload                  `json:"payload"`
	Metadata metadata.ServiceMetadata `json:"metadata"`
}

func NewEvent(eventType string, booking entity.VehicleBooking, md metadata.ServiceMetadata) Event {
	return Event{
		Type: eventType,
		Payload: Payload{
			BookingID:     booking.BookingID,
			UserID:        booking.UserID,
			StartDate:     helpers.FormatISO8601(booking.StartDate),
			EndDate:       helpers.FormatISO8601(booking.EndDate),
			Status:        booking.Status,
			Vehicle:       booking.Vehicle,
			Options:       booking.Options,
			ServicePlanID: booking.ServicePlanID,
		},
		Metadata: md,
	}
}

type publisher struct {
	pub   message.Publisher
	topic string
	log   log.Logger
}

// New publishes booking events as JSON messages on topic.
func New(pub message.Publisher, topic string, log log.Logger) Publisher {
	return &publisher{
		pub:   pub,
		topic: topic,
		log:   log,
	}
}

// Publish implements Publisher.
func (p *publisher) Publish(ctx context.Context, eventType string, booking entity.VehicleBooking, md metadata.ServiceMetadata) error {
	body, err := json.Marshal(NewEvent(eventType, booking, md))
	if err != nil {
		return errors.EventPublish("error marshal event", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), body)
	msg.SetContext(ctx)
	middleware.SetCorrelationID(md.CorrelationID, msg)
	msg.Metadata.Set(CausationIDKey, md.CausationID)
	msg.Metadata.Set(EventTypeKey, eventType)
	msg.Metadata.Set(ServiceKey, md.Service)
	msg.Metadata.Set(DomainKey, md.Domain)

	if err := p.pub.Publish(p.topic, msg); err != nil {
		p.log.Error(ctx, "failed to publish event", "eventType", eventType, "bookingId", booking.BookingID, "error", err)
		return errors.EventPublish("error publish event", err)
	}

	p.log.Info(ctx, "event published", "eventType", eventType, "bookingId", booking.BookingID, "messageId", msg.UUID)
	return nil
}
