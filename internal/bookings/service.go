package bookings

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"wayfare/internal/cancellation"
	"wayfare/internal/notifications"
	"wayfare/internal/shared/config"
	"wayfare/internal/shared/constants"
	"wayfare/internal/travel"
	"wayfare/pkg/cache"
	"wayfare/pkg/logger"

	"github.com/google/uuid"
)

type Service interface {
	SetCacheService(cacheService cache.Service)

	// CreateBooking reserves seats atomically and returns the booking in
	// CONFIRMED state. Reference collisions and transaction conflicts are
	// retried internally.
	CreateBooking(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*BookingResponse, error)

	// ConfirmBooking moves a PENDING booking to CONFIRMED.
	ConfirmBooking(ctx context.Context, userID, bookingID uuid.UUID) (*BookingResponse, error)

	// CancelBooking cancels a CONFIRMED booking inside the allowed window,
	// releases its seats and computes the tiered refund.
	CancelBooking(ctx context.Context, userID, bookingID uuid.UUID, reason string) (*CancelBookingResponse, error)

	// GetRefundQuote previews the refund a cancellation would yield right now.
	GetRefundQuote(ctx context.Context, userID, bookingID uuid.UUID) (*RefundQuoteResponse, error)

	GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) (*PaginatedBookings, error)
}

type service struct {
	repo          Repository
	travelRepo    travel.Repository
	cancellations cancellation.Service
	policy        cancellation.RefundPolicy
	notifier      notifications.NotificationService
	cacheService  cache.Service
	cfg           config.BookingConfig
}

func NewService(
	repo Repository,
	travelRepo travel.Repository,
	cancellations cancellation.Service,
	policy cancellation.RefundPolicy,
	notifier notifications.NotificationService,
	cfg config.BookingConfig,
) Service {
	return &service{
		repo:          repo,
		travelRepo:    travelRepo,
		cancellations: cancellations,
		policy:        policy,
		notifier:      notifier,
		cfg:           cfg,
	}
}

// SetCacheService wires the cache used for travel listing invalidation.
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) CreateBooking(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*BookingResponse, error) {
	if req.NumberOfSeats < 1 || req.NumberOfSeats > s.cfg.MaxSeatsPerBooking {
		return nil, newValidationError("number_of_seats",
			"must be between 1 and %d", s.cfg.MaxSeatsPerBooking)
	}
	if len(req.Passengers) != req.NumberOfSeats {
		return nil, newValidationError("passengers",
			"expected %d passengers, got %d", req.NumberOfSeats, len(req.Passengers))
	}

	option, err := s.travelRepo.GetByID(ctx, req.TravelOptionID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if !option.DepartureTime.After(now) {
		return nil, fmt.Errorf("%w: departure has passed", travel.ErrUnavailable)
	}
	if !option.IsAvailable() {
		return nil, fmt.Errorf("%w: no seats available", travel.ErrUnavailable)
	}

	passengers := make(PassengerList, len(req.Passengers))
	for i, p := range req.Passengers {
		passengers[i] = Passenger{Name: p.Name}
	}

	booking := &Booking{
		UserID:              userID,
		TravelOptionID:      option.ID,
		NumberOfSeats:       req.NumberOfSeats,
		Status:              StatusConfirmed,
		PassengerDetails:    passengers,
		ContactEmail:        req.ContactEmail,
		ContactPhone:        req.ContactPhone,
		SpecialRequirements: req.SpecialRequirements,
	}

	if err := s.reserve(ctx, booking, option.Type); err != nil {
		return nil, err
	}

	logger.BookingCreated(booking.BookingReference, option.ID.String(), userID.String(), booking.NumberOfSeats)

	s.invalidateTravelCache(ctx, option.ID)
	s.notifyConfirmed(ctx, booking)

	resp := booking.ToResponse()
	return &resp, nil
}

// reserve runs the create-with-reservation transaction, retrying reference
// collisions with a fresh suffix and transaction conflicts up to their own
// bound. The generator's timestamp-plus-random reference can collide within
// the same minute; the unique constraint on booking_reference catches that.
func (s *service) reserve(ctx context.Context, booking *Booking, travelType travel.TravelType) error {
	conflictRetries := 0
	for attempt := 0; attempt < s.cfg.ReferenceMaxAttempts; attempt++ {
		reference, err := GenerateReference(travelType, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to generate booking reference: %w", err)
		}
		booking.BookingReference = reference

		err = s.repo.CreateWithSeatReservation(ctx, booking)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrDuplicateReference) {
			continue
		}
		if IsSerializationFailure(err) {
			conflictRetries++
			if conflictRetries <= s.cfg.TxConflictRetries {
				attempt--
				continue
			}
			return fmt.Errorf("%w: could not reserve seats under contention", travel.ErrUnavailable)
		}
		return err
	}
	return fmt.Errorf("failed to allocate a unique booking reference after %d attempts", s.cfg.ReferenceMaxAttempts)
}

func (s *service) ConfirmBooking(ctx context.Context, userID, bookingID uuid.UUID) (*BookingResponse, error) {
	existing, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, ErrForbidden
	}

	booking, err := s.repo.ConfirmBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	booking.TravelOption = existing.TravelOption

	s.notifyConfirmed(ctx, booking)

	resp := booking.ToResponse()
	return &resp, nil
}

func (s *service) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID, reason string) (*CancelBookingResponse, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrForbidden
	}
	if booking.TravelOption == nil {
		return nil, fmt.Errorf("booking %s has no travel option loaded", booking.BookingReference)
	}

	now := time.Now().UTC()
	departure := booking.TravelOption.DepartureTime

	if !booking.Status.CanTransitionTo(StatusCancelled) {
		return nil, fmt.Errorf("%w: cannot cancel a %s booking", ErrInvalidTransition, booking.Status)
	}
	if !s.policy.Cancellable(departure, now) {
		return nil, fmt.Errorf("%w: cancellation window closed", ErrInvalidTransition)
	}

	// The refund is fixed by the tier in effect at this moment, before the
	// transactional state change.
	refundRate := s.policy.Rate(departure, now)
	refundAmount := s.policy.RefundAmount(booking.TotalPrice, departure, now)

	cancelled, err := s.repo.CancelWithSeatRelease(ctx, bookingID, reason, now)
	if err != nil {
		return nil, err
	}

	record := &cancellation.Cancellation{
		BookingID:        cancelled.ID,
		UserID:           userID,
		BookingReference: cancelled.BookingReference,
		Reason:           reason,
		RefundAmount:     refundAmount,
		RefundRate:       refundRate,
	}
	if err := s.cancellations.Record(ctx, record); err != nil {
		// The cancellation itself is committed; a missing audit row is
		// recoverable from the booking table.
		logger.GetDefault().ErrorWithContext(ctx, "Failed to record cancellation", err,
			map[string]interface{}{"booking_reference": cancelled.BookingReference})
	}

	s.invalidateTravelCache(ctx, cancelled.TravelOptionID)
	s.notifyCancelled(ctx, cancelled, refundAmount)

	return &CancelBookingResponse{
		Booking:      cancelled.ToResponse(),
		RefundAmount: refundAmount,
		RefundRate:   refundRate,
	}, nil
}

func (s *service) GetRefundQuote(ctx context.Context, userID, bookingID uuid.UUID) (*RefundQuoteResponse, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrForbidden
	}
	if booking.TravelOption == nil {
		return nil, fmt.Errorf("booking %s has no travel option loaded", booking.BookingReference)
	}

	now := time.Now().UTC()
	departure := booking.TravelOption.DepartureTime

	cancellable := booking.Status == StatusConfirmed && s.policy.Cancellable(departure, now)

	quote := &RefundQuoteResponse{
		BookingReference: booking.BookingReference,
		Cancellable:      cancellable,
		HoursToDeparture: math.Round(departure.Sub(now).Hours()*100) / 100,
	}
	if cancellable {
		quote.RefundRate = s.policy.Rate(departure, now)
		quote.RefundAmount = s.policy.RefundAmount(booking.TotalPrice, departure, now)
	}

	return quote, nil
}

func (s *service) GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*BookingResponse, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrForbidden
	}

	resp := booking.ToResponse()
	return &resp, nil
}

func (s *service) GetUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) (*PaginatedBookings, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	bookings, totalCount, err := s.repo.GetUserBookings(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	responses := make([]BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = bookings[i].ToResponse()
	}

	totalPages := int((totalCount + int64(query.Limit) - 1) / int64(query.Limit))

	return &PaginatedBookings{
		Bookings:   responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	}, nil
}

// invalidateTravelCache drops the cached listings and detail for the option
// whose availability just changed. Failures only leave stale cache entries
// until their TTL.
func (s *service) invalidateTravelCache(ctx context.Context, travelOptionID uuid.UUID) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_TRAVEL_ALL); err != nil {
		logger.GetDefault().WarnContext(ctx, "Failed to invalidate travel list cache", "error", err)
	}
	if err := s.cacheService.Delete(ctx, constants.BuildTravelDetailKey(travelOptionID.String())); err != nil {
		logger.GetDefault().WarnContext(ctx, "Failed to invalidate travel detail cache", "error", err)
	}
	if err := s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_STATS); err != nil {
		logger.GetDefault().WarnContext(ctx, "Failed to invalidate stats cache", "error", err)
	}
}

func (s *service) notifyConfirmed(ctx context.Context, booking *Booking) {
	if s.notifier == nil || booking.TravelOption == nil {
		return
	}

	data := map[string]interface{}{
		"booking_reference": booking.BookingReference,
		"source":            booking.TravelOption.Source,
		"destination":       booking.TravelOption.Destination,
		"departure_time":    booking.TravelOption.DepartureTime.Format(time.RFC3339),
		"number_of_seats":   booking.NumberOfSeats,
		"total_price":       booking.TotalPrice,
	}

	err := s.notifier.SendBookingConfirmed(ctx, booking.UserID, booking.ContactEmail,
		recipientName(booking), booking.ID, booking.TravelOptionID, data)
	if err != nil {
		logger.GetDefault().WarnContext(ctx, "Failed to publish booking confirmation", "error", err)
	}
}

func (s *service) notifyCancelled(ctx context.Context, booking *Booking, refundAmount float64) {
	if s.notifier == nil {
		return
	}

	data := map[string]interface{}{
		"booking_reference": booking.BookingReference,
		"refund_amount":     refundAmount,
	}

	err := s.notifier.SendBookingCancelled(ctx, booking.UserID, booking.ContactEmail,
		recipientName(booking), booking.ID, booking.TravelOptionID, data)
	if err != nil {
		logger.GetDefault().WarnContext(ctx, "Failed to publish booking cancellation", "error", err)
	}
}

func recipientName(booking *Booking) string {
	if len(booking.PassengerDetails) > 0 {
		return booking.PassengerDetails[0].Name
	}
	return booking.ContactEmail
}
