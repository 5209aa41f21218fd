package travel

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// ErrUnavailable is returned when a reservation cannot be satisfied: the
// option is not ACTIVE or fewer seats remain than requested. Callers should
// re-fetch availability and may retry with fewer seats.
var ErrUnavailable = errors.New("travel option unavailable")

// TravelOption is the inventory unit: one scheduled flight, train, or bus
// departure with a fixed seat capacity.
type TravelOption struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TravelCode     string     `gorm:"uniqueIndex;size:20;not null" json:"travel_code"`
	Type           TravelType `gorm:"type:varchar(10);not null;check:type IN ('FLIGHT', 'TRAIN', 'BUS')" json:"type"`
	CompanyName    string     `gorm:"size:100;not null" json:"company_name"`
	Source         string     `gorm:"size:100;not null;index:idx_travel_route" json:"source"`
	Destination    string     `gorm:"size:100;not null;index:idx_travel_route" json:"destination"`
	DepartureTime  time.Time  `gorm:"not null;index" json:"departure_time"`
	ArrivalTime    time.Time  `gorm:"not null" json:"arrival_time"`
	Price          float64    `gorm:"not null;check:price >= 0" json:"price"`
	TotalSeats     int        `gorm:"not null;check:total_seats >= 1 AND total_seats <= 500" json:"total_seats"`
	AvailableSeats int        `gorm:"not null;check:available_seats >= 0" json:"available_seats"`
	Status         Status     `gorm:"type:varchar(15);default:'ACTIVE';check:status IN ('ACTIVE', 'CANCELLED', 'FULL')" json:"status"`
	Amenities      string     `gorm:"type:text" json:"amenities"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName sets the table name for TravelOption
func (TravelOption) TableName() string {
	return "travel_options"
}

// IsAvailable reports whether at least one seat can currently be booked.
func (t *TravelOption) IsAvailable() bool {
	return t.AvailableSeats > 0 && t.Status == StatusActive
}

// ReserveSeats decrements availability by n. The caller must hold the row
// lock; this only applies the in-memory state change. Invariant after a
// successful call: 0 <= AvailableSeats <= TotalSeats, and Status is FULL
// exactly when AvailableSeats reaches 0.
func (t *TravelOption) ReserveSeats(n int) error {
	if n < 1 {
		return fmt.Errorf("seat count must be at least 1, got %d", n)
	}
	if !t.Status.IsBookable() {
		return fmt.Errorf("%w: status is %s", ErrUnavailable, t.Status)
	}
	if n > t.AvailableSeats {
		return fmt.Errorf("%w: %d seats requested, %d available", ErrUnavailable, n, t.AvailableSeats)
	}

	t.AvailableSeats -= n
	if t.AvailableSeats == 0 {
		t.Status = StatusFull
	}
	return nil
}

// ReleaseSeats returns n seats to the pool, capped at TotalSeats. A FULL
// option becomes ACTIVE again once seats free up; CANCELLED stays CANCELLED.
// Release must be invoked exactly once per corresponding reservation.
func (t *TravelOption) ReleaseSeats(n int) error {
	if n < 1 {
		return fmt.Errorf("seat count must be at least 1, got %d", n)
	}

	t.AvailableSeats += n
	if t.AvailableSeats > t.TotalSeats {
		t.AvailableSeats = t.TotalSeats
	}
	if t.Status == StatusFull && t.AvailableSeats > 0 {
		t.Status = StatusActive
	}
	return nil
}

// OccupancyRate returns the booked percentage rounded to 2 decimals.
func (t *TravelOption) OccupancyRate() float64 {
	if t.TotalSeats == 0 {
		return 0
	}
	booked := t.TotalSeats - t.AvailableSeats
	return math.Round(float64(booked)/float64(t.TotalSeats)*100*100) / 100
}

// Duration returns the journey duration formatted as "3h 45m".
func (t *TravelOption) Duration() string {
	delta := t.ArrivalTime.Sub(t.DepartureTime)
	hours := int(delta.Hours())
	minutes := int(delta.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// ToResponse converts a TravelOption to its API representation
func (t *TravelOption) ToResponse() TravelOptionResponse {
	return TravelOptionResponse{
		ID:             t.ID.String(),
		TravelCode:     t.TravelCode,
		Type:           t.Type,
		CompanyName:    t.CompanyName,
		Source:         t.Source,
		Destination:    t.Destination,
		DepartureTime:  t.DepartureTime,
		ArrivalTime:    t.ArrivalTime,
		Duration:       t.Duration(),
		Price:          t.Price,
		TotalSeats:     t.TotalSeats,
		AvailableSeats: t.AvailableSeats,
		Status:         t.Status,
		OccupancyRate:  t.OccupancyRate(),
		Amenities:      t.Amenities,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
