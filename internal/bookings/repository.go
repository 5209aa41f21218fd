package bookings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"wayfare/internal/travel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingListQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=PENDING CONFIRMED CANCELLED REFUNDED"`
}

type Repository interface {
	// CreateWithSeatReservation creates the booking and decrements the travel
	// option's availability in one transaction, holding a row lock on the
	// option so concurrent reservations serialize.
	CreateWithSeatReservation(ctx context.Context, booking *Booking) error

	// CancelWithSeatRelease flips the booking to CANCELLED and returns the
	// seats to the option's pool in one transaction. The status re-check
	// happens under the row lock, so a double cancel never releases twice.
	CancelWithSeatRelease(ctx context.Context, bookingID uuid.UUID, reason string, now time.Time) (*Booking, error)

	ConfirmBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) ([]Booking, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateWithSeatReservation(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the travel option row so the read-validate-decrement sequence
		// is atomic relative to concurrent reservations.
		var option travel.TravelOption
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", booking.TravelOptionID).
			First(&option).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return travel.ErrNotFound
			}
			return fmt.Errorf("failed to lock travel option: %w", err)
		}

		// Seat labels come from the seats active bookings actually hold, not
		// from the availability counter: a cancellation frees its labels for
		// reuse while later bookings keep theirs.
		var active []Booking
		err = tx.Where("travel_option_id = ? AND status IN ?",
			booking.TravelOptionID, []string{string(StatusPending), string(StatusConfirmed)}).
			Find(&active).Error
		if err != nil {
			return fmt.Errorf("failed to load active bookings: %w", err)
		}
		assignSeatLabels(booking.PassengerDetails, takenSeatLabels(active))

		if err := option.ReserveSeats(booking.NumberOfSeats); err != nil {
			return err
		}

		// Price is captured once, from the locked row.
		booking.TotalPrice = option.Price * float64(booking.NumberOfSeats)

		if err := tx.Create(booking).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateReference
			}
			return fmt.Errorf("failed to create booking: %w", err)
		}

		err = tx.Model(&travel.TravelOption{}).
			Where("id = ?", option.ID).
			Updates(map[string]interface{}{
				"available_seats": option.AvailableSeats,
				"status":          option.Status,
				"updated_at":      time.Now().UTC(),
			}).Error
		if err != nil {
			return fmt.Errorf("failed to update seat availability: %w", err)
		}

		booking.TravelOption = &option
		return nil
	})
}

func (r *repository) CancelWithSeatRelease(ctx context.Context, bookingID uuid.UUID, reason string, now time.Time) (*Booking, error) {
	var booking Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", bookingID).
			First(&booking).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to lock booking: %w", err)
		}

		if !booking.Status.CanTransitionTo(StatusCancelled) {
			return fmt.Errorf("%w: cannot cancel a %s booking", ErrInvalidTransition, booking.Status)
		}

		var option travel.TravelOption
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", booking.TravelOptionID).
			First(&option).Error
		if err != nil {
			return fmt.Errorf("failed to lock travel option: %w", err)
		}

		booking.Cancel(reason, now)
		if err := option.ReleaseSeats(booking.NumberOfSeats); err != nil {
			return err
		}

		err = tx.Model(&Booking{}).
			Where("id = ?", booking.ID).
			Updates(map[string]interface{}{
				"status":              booking.Status,
				"cancelled_at":        booking.CancelledAt,
				"cancellation_reason": booking.CancellationReason,
				"updated_at":          now,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		err = tx.Model(&travel.TravelOption{}).
			Where("id = ?", option.ID).
			Updates(map[string]interface{}{
				"available_seats": option.AvailableSeats,
				"status":          option.Status,
				"updated_at":      now,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to release seats: %w", err)
		}

		booking.TravelOption = &option
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *repository) ConfirmBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error) {
	var booking Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", bookingID).
			First(&booking).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to lock booking: %w", err)
		}

		if !booking.Status.CanTransitionTo(StatusConfirmed) {
			return fmt.Errorf("%w: cannot confirm a %s booking", ErrInvalidTransition, booking.Status)
		}

		booking.Status = StatusConfirmed
		return tx.Model(&Booking{}).
			Where("id = ?", booking.ID).
			Updates(map[string]interface{}{
				"status":     StatusConfirmed,
				"updated_at": time.Now().UTC(),
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("TravelOption").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) ([]Booking, int64, error) {
	var bookings []Booking
	var totalCount int64

	// Set defaults
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	baseQuery := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("user_id = ?", userID)

	if query.Status != "" {
		baseQuery = baseQuery.Where("status = ?", query.Status)
	}

	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := baseQuery.
		Preload("TravelOption").
		Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&bookings).Error

	return bookings, totalCount, err
}

// takenSeatLabels collects the numeric seat labels held by the given
// bookings.
func takenSeatLabels(active []Booking) map[int]bool {
	taken := make(map[int]bool)
	for _, b := range active {
		for _, p := range b.PassengerDetails {
			if n, err := strconv.Atoi(p.SeatNumber); err == nil {
				taken[n] = true
			}
		}
	}
	return taken
}

// assignSeatLabels gives each passenger the lowest free label, in passenger
// order. Callers must hold the travel option row lock so concurrent
// assignments serialize.
func assignSeatLabels(passengers PassengerList, taken map[int]bool) {
	next := 1
	for i := range passengers {
		for taken[next] {
			next++
		}
		passengers[i].SeatNumber = strconv.Itoa(next)
		taken[next] = true
	}
}

// isUniqueViolation reports whether err is a Postgres unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsSerializationFailure reports whether err is a Postgres
// serialization_failure or deadlock_detected; these transaction aborts are
// safe to retry.
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && (pgErr.Code == "40001" || pgErr.Code == "40P01")
}
