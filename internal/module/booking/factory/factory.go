// Package factory maps booking requests to domain records and stored records
// to responses.
package factory

import (
	"vehicle-booking-service/internal/module/booking/models/entity"
	"vehicle-booking-service/internal/module/booking/models/request"
	"vehicle-booking-service/internal/module/booking/models/response"
	"vehicle-booking-service/internal/pkg/errors"
	"vehicle-booking-service/internal/pkg/helpers"
)

// FromRequest builds a new BOOKED booking from a schema-valid request. It
// fails with a DomainValidationError when a business rule is broken.
func FromRequest(req *request.VehicleBooking) (entity.VehicleBooking, error) {
	if req == nil {
		return entity.VehicleBooking{}, errors.BadRequest("no payload body")
	}

	start, err := helpers.ParseISO8601(req.StartDate)
	if err != nil {
		return entity.VehicleBooking{}, errors.DomainValidation("startDate is not a valid date")
	}
	end, err := helpers.ParseISO8601(req.EndDate)
	if err != nil {
		return entity.VehicleBooking{}, errors.DomainValidation("endDate is not a valid date")
	}
	if !start.Before(end) {
		return entity.VehicleBooking{}, errors.DomainValidation("startDate must be before endDate")
	}

	vehicle := toVehicle(req.VehicleDetails)
	options := toOptions(req.BookingOptions)

	if vehicle != nil && vehicle.FuelType == entity.FuelTypeElectric &&
		options != nil && options.OilService != nil && *options.OilService {
		return entity.VehicleBooking{}, errors.DomainValidation("oil service is not available for electric vehicles")
	}

	return entity.VehicleBooking{
		UserID:        req.UserID,
		StartDate:     start,
		EndDate:       end,
		ServicePlanID: copyString(req.ServicePlanID),
		Vehicle:       vehicle,
		Options:       options,
		Status:        entity.StatusBooked,
	}, nil
}

// ToResponse projects a stored booking. A booking without an id has not been
// stored yet, which is an ordering bug in the caller.
func ToResponse(booking entity.VehicleBooking) (response.VehicleBooking, error) {
	if booking.BookingID == "" {
		return response.VehicleBooking{}, errors.InvariantViolation("booking has no id, it must be stored before it is returned")
	}

	return response.VehicleBooking{
		BookingID: booking.BookingID,
		Status:    string(booking.Status),
		UserID:    booking.UserID,
		StartDate: helpers.FormatISO8601(booking.StartDate),
		EndDate:   helpers.FormatISO8601(booking.EndDate),
	}, nil
}

func toVehicle(v *request.VehicleDetails) *entity.Vehicle {
	if v == nil {
		return nil
	}
	return &entity.Vehicle{
		Make:       v.Make,
		Model:      v.Model,
		Year:       v.Year,
		FuelType:   entity.FuelType(v.FuelType),
		Mileage:    copyInt(v.Mileage),
		WarrantyID: copyString(v.WarrantyID),
	}
}

func toOptions(o *request.BookingOptions) *entity.BookingOptions {
	if o == nil {
		return nil
	}
	return &entity.BookingOptions{
		OilService:       copyBool(o.OilService),
		BrakesCheck:      copyBool(o.BrakesCheck),
		TireRotation:     copyBool(o.TireRotation),
		ClutchInspection: copyBool(o.ClutchInspection),
		WashAndVac:       copyBool(o.WashAndVac),
	}
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}

func copyBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
