package validator_test

import (
	"testing"
	"vehicle-booking-service/internal/module/booking/models/request"
	"vehicle-booking-service/internal/pkg/errors"
	"vehicle-booking-service/internal/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() request.VehicleBooking {
	return request.VehicleBooking{
		UserID:    "user-42",
		StartDate: "2024-07-01T09:15:00Z",
		EndDate:   "2024-07-02T15:45:00.000+02:00",
		VehicleDetails: &request.VehicleDetails{
			Make:     "Toyota",
			Model:    "Corolla",
			Year:     2020,
			FuelType: "PETROL",
		},
	}
}

func fieldErrors(t *testing.T, err error) []validator.FieldError {
	t.Helper()
	require.Error(t, err)

	var ce *errors.CustomError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 422, ce.Code)
	assert.Equal(t, errors.KindValidation, ce.Kind)

	details, ok := ce.Details.([]validator.FieldError)
	require.True(t, ok)
	return details
}

func TestValidate(t *testing.T) {
	v := validator.New()

	t.Run("valid request", func(t *testing.T) {
		req := validRequest()
		assert.NoError(t, validator.Validate(v, req))
	})

	t.Run("optional objects may be absent", func(t *testing.T) {
		req := validRequest()
		req.VehicleDetails = nil
		assert.NoError(t, validator.Validate(v, req))
	})

	t.Run("missing user id", func(t *testing.T) {
		req := validRequest()
		req.UserID = ""

		details := fieldErrors(t, validator.Validate(v, req))
		require.Len(t, details, 1)
		assert.Equal(t, "userId", details[0].Field)
		assert.Equal(t, "required", details[0].Rule)
		assert.Equal(t, "userId is required", details[0].Message)
	})

	t.Run("zero values count as missing", func(t *testing.T) {
		req := validRequest()
		req.VehicleDetails.Make = ""
		req.VehicleDetails.Year = 0

		details := fieldErrors(t, validator.Validate(v, req))
		require.Len(t, details, 2)
		assert.Equal(t, "vehicleDetails.make", details[0].Field)
		assert.Equal(t, "vehicleDetails.year", details[1].Field)
		assert.Equal(t, "required", details[1].Rule)
	})

	t.Run("unknown fuel type", func(t *testing.T) {
		req := validRequest()
		req.VehicleDetails.FuelType = "STEAM"

		details := fieldErrors(t, validator.Validate(v, req))
		require.Len(t, details, 1)
		assert.Equal(t, "vehicleDetails.fuelType", details[0].Field)
		assert.Equal(t, "oneof", details[0].Rule)
	})

	t.Run("date is not ISO-8601", func(t *testing.T) {
		req := validRequest()
		req.StartDate = "01/07/2024"

		details := fieldErrors(t, validator.Validate(v, req))
		require.Len(t, details, 1)
		assert.Equal(t, "startDate", details[0].Field)
		assert.Equal(t, "datetime", details[0].Rule)
	})

	t.Run("every violation is reported", func(t *testing.T) {
		req := validRequest()
		req.UserID = ""
		req.VehicleDetails.Make = ""
		req.VehicleDetails.Year = 0

		details := fieldErrors(t, validator.Validate(v, req))
		assert.Len(t, details, 3)
	})
}
