package bookings

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"wayfare/internal/travel"

	"github.com/google/uuid"
)

// Passenger is one traveller on a booking, paired with an assigned seat.
type Passenger struct {
	Name       string `json:"name"`
	SeatNumber string `json:"seat_number"`
}

// PassengerList is stored as a JSONB column. Order is significant and its
// length always equals the booking's NumberOfSeats.
type PassengerList []Passenger

// Value implements driver.Valuer for JSONB storage
func (p PassengerList) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner for JSONB storage
func (p *PassengerList) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unexpected type %T for passenger list", value)
	}
	return json.Unmarshal(bytes, p)
}

// Booking is the transaction record for a seat reservation against one
// travel option.
type Booking struct {
	ID                  uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingReference    string        `gorm:"uniqueIndex;size:20;not null" json:"booking_reference"`
	UserID              uuid.UUID     `gorm:"type:uuid;index;not null" json:"user_id"`
	TravelOptionID      uuid.UUID     `gorm:"type:uuid;index;not null" json:"travel_option_id"`
	NumberOfSeats       int           `gorm:"not null;check:number_of_seats >= 1 AND number_of_seats <= 10" json:"number_of_seats"`
	TotalPrice          float64       `gorm:"not null" json:"total_price"`
	Status              Status        `gorm:"type:varchar(15);default:'PENDING';check:status IN ('PENDING', 'CONFIRMED', 'CANCELLED', 'REFUNDED')" json:"status"`
	PassengerDetails    PassengerList `gorm:"type:jsonb" json:"passenger_details"`
	ContactEmail        string        `gorm:"size:254;not null" json:"contact_email"`
	ContactPhone        string        `gorm:"size:15" json:"contact_phone"`
	SpecialRequirements string        `gorm:"type:text" json:"special_requirements"`
	PaymentID           string        `gorm:"size:100" json:"payment_id,omitempty"`
	CancelledAt         *time.Time    `json:"cancelled_at,omitempty"`
	CancellationReason  string        `gorm:"type:text" json:"cancellation_reason,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`

	// Relationships
	TravelOption *travel.TravelOption `json:"travel_option,omitempty" gorm:"foreignKey:TravelOptionID;constraint:OnDelete:RESTRICT;"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// Cancel marks the booking cancelled in memory. The repository persists this
// together with the seat release in one transaction.
func (b *Booking) Cancel(reason string, at time.Time) {
	b.Status = StatusCancelled
	b.CancelledAt = &at
	b.CancellationReason = reason
	b.UpdatedAt = at
}

// IsCancellable reports whether the booking can still be cancelled: it must
// be CONFIRMED and more than cutoff before departure.
func (b *Booking) IsCancellable(departureTime time.Time, now time.Time, cutoff time.Duration) bool {
	if b.Status != StatusConfirmed {
		return false
	}
	return departureTime.Sub(now) > cutoff
}
