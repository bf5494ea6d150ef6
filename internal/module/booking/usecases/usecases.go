package usecases

import (
	"context"
	"vehicle-booking-service/internal/module/booking/events"
	"vehicle-booking-service/internal/module/booking/factory"
	"vehicle-booking-service/internal/module/booking/models/request"
	"vehicle-booking-service/internal/module/booking/models/response"
	"vehicle-booking-service/internal/module/booking/repositories"
	"vehicle-booking-service/internal/pkg/metadata"
)

type usecase struct {
	repo      repositories.Repositories
	publisher events.Publisher
}

type Usecase interface {
	CreateBooking(ctx context.Context, payload *request.VehicleBooking, md metadata.ServiceMetadata) (response.VehicleBooking, error)
	// CompleteBooking stores the booking like CreateBooking and announces it
	// as BookingCompleted.
	CompleteBooking(ctx context.Context, payload *request.VehicleBooking, md metadata.ServiceMetadata) (response.VehicleBooking, error)
}

func New(repo repositories.Repositories, publisher events.Publisher) Usecase {
	return &usecase{
		repo:      repo,
		publisher: publisher,
	}
}

func (u *usecase) CreateBooking(ctx context.Context, payload *request.VehicleBooking, md metadata.ServiceMetadata) (response.VehicleBooking, error) {
	return u.execute(ctx, events.BookingCreated, payload, md)
}

func (u *usecase) CompleteBooking(ctx context.Context, payload *request.VehicleBooking, md metadata.ServiceMetadata) (response.VehicleBooking, error) {
	return u.execute(ctx, events.BookingCompleted, payload, md)
}

// execute runs factory, store, publish and projection strictly in that
// order. Errors are returned as they are; a booking stays stored when
// publishing fails.
func (u *usecase) execute(ctx context.Context, eventType string, payload *request.VehicleBooking, md metadata.ServiceMetadata) (response.VehicleBooking, error) {
	booking, err := factory.FromRequest(payload)
	if err != nil {
		return response.VehicleBooking{}, err
	}

	stored, err := u.repo.CreateBooking(ctx, booking)
	if err != nil {
		return response.VehicleBooking{}, err
	}

	if err := u.publisher.Publish(ctx, eventType, stored, md); err != nil {
		return response.VehicleBooking{}, err
	}

	return factory.ToResponse(stored)
}
