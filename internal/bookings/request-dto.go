package bookings

import "github.com/google/uuid"

type PassengerInput struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type CreateBookingRequest struct {
	TravelOptionID      uuid.UUID        `json:"travel_option_id" binding:"required"`
	NumberOfSeats       int              `json:"number_of_seats" binding:"required,min=1,max=10"`
	Passengers          []PassengerInput `json:"passengers" binding:"required,min=1,max=10,dive"`
	ContactEmail        string           `json:"contact_email" binding:"required,email"`
	ContactPhone        string           `json:"contact_phone" binding:"omitempty,min=7,max=15"`
	SpecialRequirements string           `json:"special_requirements" binding:"omitempty,max=500"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}
