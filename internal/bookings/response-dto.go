package bookings

import (
	"time"

	"wayfare/internal/travel"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                  uuid.UUID                    `json:"id"`
	BookingReference    string                       `json:"booking_reference"`
	UserID              uuid.UUID                    `json:"user_id"`
	TravelOptionID      uuid.UUID                    `json:"travel_option_id"`
	NumberOfSeats       int                          `json:"number_of_seats"`
	TotalPrice          float64                      `json:"total_price"`
	Status              string                       `json:"status"`
	PassengerDetails    []Passenger                  `json:"passenger_details"`
	ContactEmail        string                       `json:"contact_email"`
	ContactPhone        string                       `json:"contact_phone,omitempty"`
	SpecialRequirements string                       `json:"special_requirements,omitempty"`
	CancelledAt         *time.Time                   `json:"cancelled_at,omitempty"`
	CancellationReason  string                       `json:"cancellation_reason,omitempty"`
	CreatedAt           time.Time                    `json:"created_at"`
	TravelOption        *travel.TravelOptionResponse `json:"travel_option,omitempty"`
}

func (b *Booking) ToResponse() BookingResponse {
	resp := BookingResponse{
		ID:                  b.ID,
		BookingReference:    b.BookingReference,
		UserID:              b.UserID,
		TravelOptionID:      b.TravelOptionID,
		NumberOfSeats:       b.NumberOfSeats,
		TotalPrice:          b.TotalPrice,
		Status:              b.Status.String(),
		PassengerDetails:    b.PassengerDetails,
		ContactEmail:        b.ContactEmail,
		ContactPhone:        b.ContactPhone,
		SpecialRequirements: b.SpecialRequirements,
		CancelledAt:         b.CancelledAt,
		CancellationReason:  b.CancellationReason,
		CreatedAt:           b.CreatedAt,
	}
	if b.TravelOption != nil {
		option := b.TravelOption.ToResponse()
		resp.TravelOption = &option
	}
	return resp
}

type PaginatedBookings struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// CancelBookingResponse carries the cancelled booking along with the refund
// that was granted under the tiered policy.
type CancelBookingResponse struct {
	Booking      BookingResponse `json:"booking"`
	RefundAmount float64         `json:"refund_amount"`
	RefundRate   float64         `json:"refund_rate"`
}

// RefundQuoteResponse previews what a cancellation would refund right now,
// without performing it.
type RefundQuoteResponse struct {
	BookingReference string  `json:"booking_reference"`
	Cancellable      bool    `json:"cancellable"`
	RefundAmount     float64 `json:"refund_amount"`
	RefundRate       float64 `json:"refund_rate"`
	HoursToDeparture float64 `json:"hours_to_departure"`
}
