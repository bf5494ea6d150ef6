package repositories

import (
	"context"
	"vehicle-booking-service/internal/module/booking/models/entity"
	"vehicle-booking-service/internal/pkg/metadata"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "vehicle-booking-service/repositories"

type traced struct {
	next   Repositories
	tracer trace.Tracer
}

// NewTraced wraps next so that every call runs in its own client span.
func NewTraced(next Repositories, tp trace.TracerProvider) Repositories {
	return &traced{
		next:   next,
		tracer: tp.Tracer(tracerName),
	}
}

func (r *traced) CreateBooking(ctx context.Context, booking entity.VehicleBooking) (entity.VehicleBooking, error) {
	ctx, span := r.tracer.Start(ctx, "DB.CreateBooking", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	if md, ok := metadata.FromContext(ctx); ok {
		span.SetAttributes(md.Attributes()...)
	}

	stored, err := r.next.CreateBooking(ctx, booking)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return stored, err
	}

	span.SetAttributes(attribute.String("bookingId", stored.BookingID))
	return stored, nil
}
