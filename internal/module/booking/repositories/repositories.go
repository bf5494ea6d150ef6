package repositories

import (
	"context"
	"vehicle-booking-service/internal/module/booking/models/entity"
)

type Repositories interface {
	// CreateBooking stores a new booking and returns the stored record with
	// its id and timestamps.
	CreateBooking(ctx context.Context, booking entity.VehicleBooking) (entity.VehicleBooking, error)
}
