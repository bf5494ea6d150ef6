package entity

import (
	"time"
)

type FuelType string

const (
	FuelTypePetrol   FuelType = "PETROL"
	FuelTypeDiesel   FuelType = "DIESEL"
	FuelTypeElectric FuelType = "ELECTRIC"
	FuelTypeHybrid   FuelType = "HYBRID"
)

type Status string

const (
	StatusBooked    Status = "BOOKED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

type Vehicle struct {
	Make       string   `json:"make" bson:"make"`
	Model      string   `json:"model" bson:"model"`
	Year       int      `json:"year" bson:"year"`
	FuelType   FuelType `json:"fuelType" bson:"fuelType"`
	Mileage    *int     `json:"mileage,omitempty" bson:"mileage,omitempty"`
	WarrantyID *string  `json:"warrantyId,omitempty" bson:"warrantyId,omitempty"`
}

type BookingOptions struct {
	OilService       *bool `json:"oilService,omitempty" bson:"oilService,omitempty"`
	BrakesCheck      *bool `json:"brakesCheck,omitempty" bson:"brakesCheck,omitempty"`
	TireRotation     *bool `json:"tireRotation,omitempty" bson:"tireRotation,omitempty"`
	ClutchInspection *bool `json:"clutchInspection,omitempty" bson:"clutchInspection,omitempty"`
	WashAndVac       *bool `json:"washAndVac,omitempty" bson:"washAndVac,omitempty"`
}

// VehicleBooking is empty of BookingID, CreatedAt and UpdatedAt until the
// booking has been stored.
type VehicleBooking struct {
	BookingID     string
	UserID        string
	StartDate     time.Time
	EndDate       time.Time
	ServicePlanID *string
	Vehicle       *Vehicle
	Options       *BookingOptions
	Status        Status
	CreatedAt     *time.Time
	UpdatedAt     *time.Time
}
