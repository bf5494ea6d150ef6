package events_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"
	"vehicle-booking-service/internal/module/booking/events"
	"vehicle-booking-service/internal/module/booking/mocks"
	"vehicle-booking-service/internal/module/booking/models/entity"
	"vehicle-booking-service/internal/pkg/errors"
	log_internal "vehicle-booking-service/internal/pkg/log"
	"vehicle-booking-service/internal/pkg/metadata"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

const topic = "vehicle-bookings"

var md = metadata.New("req-123", "", "vehicle-booking-service", "bookings")

type failingPublisher struct {
	err error
}

func (p *failingPublisher) Publish(topic string, messages ...*message.Message) error {
	return p.err
}

func (p *failingPublisher) Close() error {
	return nil
}

func boolPtr(b bool) *bool { return &b }

func storedBooking() entity.VehicleBooking {
	created := time.Date(2024, 6, 30, 8, 0, 0, 0, time.UTC)
	return entity.VehicleBooking{
		BookingID: "66a1f0c2e4b0a1b2c3d4e5f6",
		UserID:    "user-42",
		StartDate: time.Date(2024, 7, 1, 9, 15, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 7, 2, 15, 45, 0, 0, time.UTC),
		Vehicle: &entity.Vehicle{
			Make:     "Toyota",
			Model:    "Corolla",
			Year:     2020,
			FuelType: entity.FuelTypePetrol,
		},
		Options:   &entity.BookingOptions{OilService: boolPtr(true)},
		Status:    entity.StatusBooked,
		CreatedAt: &created,
		UpdatedAt: &created,
	}
}

func TestPublish(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	msgs, err := pubSub.Subscribe(context.Background(), topic)
	require.NoError(t, err)

	p := events.New(pubSub, topic, log_internal.Nop())
	require.NoError(t, p.Publish(context.Background(), events.BookingCreated, storedBooking(), md))

	var msg *message.Message
	select {
	case msg = <-msgs:
		msg.Ack()
	case <-time.After(time.Second):
		t.Fatal("no message published")
	}

	assert.Equal(t, "req-123", middleware.MessageCorrelationID(msg))
	assert.Equal(t, "req-123", msg.Metadata.Get(events.CausationIDKey))
	assert.Equal(t, events.BookingCreated, msg.Metadata.Get(events.EventTypeKey))
	assert.Equal(t, "vehicle-booking-service", msg.Metadata.Get(events.ServiceKey))
	assert.Equal(t, "bookings", msg.Metadata.Get(events.DomainKey))

	assert.JSONEq(t, `{
		"type": "BookingCreated",
		"payload": {
			"bookingId": "66a1f0c2e4b0a1b2c3d4e5f6",
			"userId": "user-42",
			"startDate": "2024-07-01T09:15:00.000Z",
			"endDate": "2024-07-02T15:45:00.000Z",
			"status": "BOOKED",
			"vehicle": {"make": "Toyota", "model": "Corolla", "year": 2020, "fuelType": "PETROL"},
			"options": {"oilService": true}
		},
		"metadata": {
			"correlationId": "req-123",
			"causationId": "req-123",
			"service": "vehicle-booking-service",
			"domain": "bookings"
		}
	}`, string(msg.Payload))
}

func TestPublishError(t *testing.T) {
	brokerErr := stderrors.New("channel/connection is not open")
	p := events.New(&failingPublisher{err: brokerErr}, topic, log_internal.Nop())

	err := p.Publish(context.Background(), events.BookingCompleted, storedBooking(), md)
	assert.True(t, errors.IsKind(err, errors.KindEventPublish))
	assert.ErrorIs(t, err, brokerErr)
}

func TestNewEvent(t *testing.T) {
	booking := storedBooking()
	booking.Vehicle = nil
	booking.Options = nil

	body, err := json.Marshal(events.NewEvent(events.BookingCompleted, booking, md))
	require.NoError(t, err)

	var got struct {
		Type    string                 `json:"type"`
		Payload map[string]interface{} `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, events.BookingCompleted, got.Type)
	assert.NotContains(t, got.Payload, "vehicle")
	assert.NotContains(t, got.Payload, "options")
	assert.NotContains(t, got.Payload, "servicePlanId")
	assert.NotContains(t, got.Payload, "createdAt")
}

func TestTracedPublish(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		publisherMock := mocks.NewPublisher(t)
		publisherMock.On("Publish", mock.Anything, events.BookingCreated, mock.Anything, md).Return(nil).Once()

		require.NoError(t, events.NewTraced(publisherMock, tp).Publish(ctx, events.BookingCreated, storedBooking(), md))

		spans := sr.Ended()
		require.NotEmpty(t, spans)
		span := spans[len(spans)-1]
		assert.Equal(t, "EventBus.Publish", span.Name())
		assert.Equal(t, codes.Unset, span.Status().Code)
	})

	t.Run("error", func(t *testing.T) {
		publisherMock := mocks.NewPublisher(t)
		pubErr := errors.EventPublish("error publish event", stderrors.New("nack"))
		publisherMock.On("Publish", mock.Anything, events.BookingCreated, mock.Anything, md).Return(pubErr).Once()

		err := events.NewTraced(publisherMock, tp).Publish(ctx, events.BookingCreated, storedBooking(), md)
		assert.Equal(t, pubErr, err)

		spans := sr.Ended()
		span := spans[len(spans)-1]
		assert.Equal(t, codes.Error, span.Status().Code)
	})
}
