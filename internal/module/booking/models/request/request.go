package request

type VehicleBooking struct {
	UserID         string          `json:"userId" validate:"required"`
	StartDate      string          `json:"startDate" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndDate        string          `json:"endDate" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	ServicePlanID  *string         `json:"servicePlanId,omitempty"`
	VehicleDetails *VehicleDetails `json:"vehicleDetails,omitempty"`
	BookingOptions *BookingOptions `json:"bookingOptions,omitempty"`
}

type VehicleDetails struct {
	Make       string  `json:"make" validate:"required"`
	Model      string  `json:"model" validate:"required"`
	Year       int     `json:"year" validate:"required"`
	FuelType   string  `json:"fuelType" validate:"required,oneof=PETROL DIESEL ELECTRIC HYBRID"`
	Mileage    *int    `json:"mileage,omitempty"`
	WarrantyID *string `json:"warrantyId,omitempty"`
}

type BookingOptions struct {
	OilService       *bool `json:"oilService,omitempty"`
	BrakesCheck      *bool `json:"brakesCheck,omitempty"`
	TireRotation     *bool `json:"tireRotation,omitempty"`
	ClutchInspection *bool `json:"clutchInspection,omitempty"`
	WashAndVac       *bool `json:"washAndVac,omitempty"`
}
