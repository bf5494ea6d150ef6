package events

import (
	"context"
	"vehicle-booking-service/internal/module/booking/models/entity"
	"vehicle-booking-service/internal/pkg/metadata"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "vehicle-booking-service/events"

type traced struct {
	next   Publisher
	tracer trace.Tracer
}

func NewTraced(next Publisher, tp trace.TracerProvider) Publisher {
	return &traced{
		next:   next,
		tracer: tp.Tracer(tracerName),
	}
}

func (p *traced) Publish(ctx context.Context, eventType string, booking entity.VehicleBooking, md metadata.ServiceMetadata) error {
	ctx, span := p.tracer.Start(ctx, "EventBus.Publish",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("eventType", eventType),
			attribute.String("bookingId", booking.BookingID),
		),
	)
	defer span.End()
	span.SetAttributes(md.Attributes()...)

	if err := p.next.Publish(ctx, eventType, booking, md); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
