package response

type VehicleBooking struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
	UserID    string `json:"userId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}
