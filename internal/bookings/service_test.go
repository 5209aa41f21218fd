package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"wayfare/internal/cancellation"
	"wayfare/internal/shared/config"
	"wayfare/internal/travel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateWithSeatReservation(ctx context.Context, booking *Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *mockRepository) CancelWithSeatRelease(ctx context.Context, bookingID uuid.UUID, reason string, now time.Time) (*Booking, error) {
	args := m.Called(ctx, bookingID, reason, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *mockRepository) ConfirmBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *mockRepository) GetUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) ([]Booking, int64, error) {
	args := m.Called(ctx, userID, query)
	var bookings []Booking
	if args.Get(0) != nil {
		bookings = args.Get(0).([]Booking)
	}
	return bookings, args.Get(1).(int64), args.Error(2)
}

type mockTravelRepository struct {
	mock.Mock
}

func (m *mockTravelRepository) Create(ctx context.Context, option *travel.TravelOption) error {
	args := m.Called(ctx, option)
	return args.Error(0)
}

func (m *mockTravelRepository) GetByID(ctx context.Context, id uuid.UUID) (*travel.TravelOption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*travel.TravelOption), args.Error(1)
}

func (m *mockTravelRepository) Update(ctx context.Context, option *travel.TravelOption) error {
	args := m.Called(ctx, option)
	return args.Error(0)
}

func (m *mockTravelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTravelRepository) FindAvailable(ctx context.Context, query travel.TravelListQuery) ([]travel.TravelOption, int64, error) {
	args := m.Called(ctx, query)
	var options []travel.TravelOption
	if args.Get(0) != nil {
		options = args.Get(0).([]travel.TravelOption)
	}
	return options, args.Get(1).(int64), args.Error(2)
}

func (m *mockTravelRepository) GetUpcoming(ctx context.Context, limit int) ([]travel.TravelOption, error) {
	args := m.Called(ctx, limit)
	var options []travel.TravelOption
	if args.Get(0) != nil {
		options = args.Get(0).([]travel.TravelOption)
	}
	return options, args.Error(1)
}

func (m *mockTravelRepository) CountReferencingBookings(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockCancellationService struct {
	mock.Mock
}

func (m *mockCancellationService) Record(ctx context.Context, record *cancellation.Cancellation) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockCancellationService) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*cancellation.Cancellation, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cancellation.Cancellation), args.Error(1)
}

func (m *mockCancellationService) GetUserCancellations(ctx context.Context, userID uuid.UUID, page, limit int) ([]cancellation.Cancellation, int64, error) {
	args := m.Called(ctx, userID, page, limit)
	var records []cancellation.Cancellation
	if args.Get(0) != nil {
		records = args.Get(0).([]cancellation.Cancellation)
	}
	return records, args.Get(1).(int64), args.Error(2)
}

func testBookingConfig() config.BookingConfig {
	return config.BookingConfig{
		MaxSeatsPerBooking:   10,
		CancellationCutoff:   2 * time.Hour,
		TxConflictRetries:    3,
		ReferenceMaxAttempts: 5,
	}
}

func newTestService(repo Repository, travelRepo travel.Repository, cancellations cancellation.Service) Service {
	policy := cancellation.NewRefundPolicy(2 * time.Hour)
	return NewService(repo, travelRepo, cancellations, policy, nil, testBookingConfig())
}

func activeOption(departureIn time.Duration) *travel.TravelOption {
	return &travel.TravelOption{
		ID:             uuid.New(),
		Type:           travel.TypeFlight,
		Source:         "Mumbai",
		Destination:    "Delhi",
		DepartureTime:  time.Now().UTC().Add(departureIn),
		ArrivalTime:    time.Now().UTC().Add(departureIn + 2*time.Hour),
		Price:          1000,
		TotalSeats:     100,
		AvailableSeats: 50,
		Status:         travel.StatusActive,
	}
}

func validCreateRequest(optionID uuid.UUID) CreateBookingRequest {
	return CreateBookingRequest{
		TravelOptionID: optionID,
		NumberOfSeats:  2,
		Passengers: []PassengerInput{
			{Name: "Asha Patel"},
			{Name: "Diego Moreno"},
		},
		ContactEmail: "asha@example.com",
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc := newTestService(new(mockRepository), new(mockTravelRepository), new(mockCancellationService))
	userID := uuid.New()

	t.Run("too many seats", func(t *testing.T) {
		req := validCreateRequest(uuid.New())
		req.NumberOfSeats = 11

		_, err := svc.CreateBooking(context.Background(), userID, req)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "number_of_seats", vErr.Field)
	})

	t.Run("passenger count mismatch", func(t *testing.T) {
		req := validCreateRequest(uuid.New())
		req.Passengers = req.Passengers[:1]

		_, err := svc.CreateBooking(context.Background(), userID, req)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "passengers", vErr.Field)
	})
}

func TestCreateBookingUnavailableOption(t *testing.T) {
	userID := uuid.New()

	t.Run("departure has passed", func(t *testing.T) {
		travelRepo := new(mockTravelRepository)
		option := activeOption(-time.Hour)
		travelRepo.On("GetByID", mock.Anything, option.ID).Return(option, nil)

		svc := newTestService(new(mockRepository), travelRepo, new(mockCancellationService))
		_, err := svc.CreateBooking(context.Background(), userID, validCreateRequest(option.ID))

		assert.ErrorIs(t, err, travel.ErrUnavailable)
	})

	t.Run("sold out", func(t *testing.T) {
		travelRepo := new(mockTravelRepository)
		option := activeOption(48 * time.Hour)
		option.AvailableSeats = 0
		option.Status = travel.StatusFull
		travelRepo.On("GetByID", mock.Anything, option.ID).Return(option, nil)

		svc := newTestService(new(mockRepository), travelRepo, new(mockCancellationService))
		_, err := svc.CreateBooking(context.Background(), userID, validCreateRequest(option.ID))

		assert.ErrorIs(t, err, travel.ErrUnavailable)
	})

	t.Run("option not found", func(t *testing.T) {
		travelRepo := new(mockTravelRepository)
		optionID := uuid.New()
		travelRepo.On("GetByID", mock.Anything, optionID).Return(nil, travel.ErrNotFound)

		svc := newTestService(new(mockRepository), travelRepo, new(mockCancellationService))
		_, err := svc.CreateBooking(context.Background(), userID, validCreateRequest(optionID))

		assert.ErrorIs(t, err, travel.ErrNotFound)
	})
}

func TestCreateBookingSuccess(t *testing.T) {
	userID := uuid.New()
	travelRepo := new(mockTravelRepository)
	option := activeOption(48 * time.Hour)
	travelRepo.On("GetByID", mock.Anything, option.ID).Return(option, nil)

	repo := new(mockRepository)
	repo.On("CreateWithSeatReservation", mock.Anything, mock.MatchedBy(func(b *Booking) bool {
		return b.UserID == userID && b.NumberOfSeats == 2 && b.Status == StatusConfirmed &&
			len(b.BookingReference) == 18
	})).Run(func(args mock.Arguments) {
		booking := args.Get(1).(*Booking)
		booking.ID = uuid.New()
		booking.TotalPrice = option.Price * float64(booking.NumberOfSeats)
		booking.TravelOption = option
	}).Return(nil).Once()

	svc := newTestService(repo, travelRepo, new(mockCancellationService))
	resp, err := svc.CreateBooking(context.Background(), userID, validCreateRequest(option.ID))

	require.NoError(t, err)
	assert.Equal(t, string(StatusConfirmed), resp.Status)
	assert.Equal(t, 2000.0, resp.TotalPrice)
	assert.Equal(t, "FL", resp.BookingReference[:2])
	repo.AssertExpectations(t)
}

func TestCreateBookingRetriesDuplicateReference(t *testing.T) {
	userID := uuid.New()
	travelRepo := new(mockTravelRepository)
	option := activeOption(48 * time.Hour)
	travelRepo.On("GetByID", mock.Anything, option.ID).Return(option, nil)

	repo := new(mockRepository)
	repo.On("CreateWithSeatReservation", mock.Anything, mock.Anything).
		Return(ErrDuplicateReference).Twice()
	repo.On("CreateWithSeatReservation", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			booking := args.Get(1).(*Booking)
			booking.TravelOption = option
		}).Return(nil).Once()

	svc := newTestService(repo, travelRepo, new(mockCancellationService))
	resp, err := svc.CreateBooking(context.Background(), userID, validCreateRequest(option.ID))

	require.NoError(t, err)
	assert.NotEmpty(t, resp.BookingReference)
	repo.AssertExpectations(t)
}

func TestCreateBookingReferenceAttemptsExhausted(t *testing.T) {
	userID := uuid.New()
	travelRepo := new(mockTravelRepository)
	option := activeOption(48 * time.Hour)
	travelRepo.On("GetByID", mock.Anything, option.ID).Return(option, nil)

	repo := new(mockRepository)
	repo.On("CreateWithSeatReservation", mock.Anything, mock.Anything).
		Return(ErrDuplicateReference).Times(5)

	svc := newTestService(repo, travelRepo, new(mockCancellationService))
	_, err := svc.CreateBooking(context.Background(), userID, validCreateRequest(option.ID))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unique booking reference")
	repo.AssertExpectations(t)
}

func TestCreateBookingPropagatesRepositoryError(t *testing.T) {
	userID := uuid.New()
	travelRepo := new(mockTravelRepository)
	option := activeOption(48 * time.Hour)
	travelRepo.On("GetByID", mock.Anything, option.ID).Return(option, nil)

	dbErr := errors.New("connection reset")
	repo := new(mockRepository)
	repo.On("CreateWithSeatReservation", mock.Anything, mock.Anything).Return(dbErr).Once()

	svc := newTestService(repo, travelRepo, new(mockCancellationService))
	_, err := svc.CreateBooking(context.Background(), userID, validCreateRequest(option.ID))

	assert.ErrorIs(t, err, dbErr)
	repo.AssertExpectations(t)
}

func confirmedBooking(userID uuid.UUID, departureIn time.Duration) *Booking {
	option := activeOption(departureIn)
	return &Booking{
		ID:               uuid.New(),
		BookingReference: "FL202601151430A7K2",
		UserID:           userID,
		TravelOptionID:   option.ID,
		NumberOfSeats:    2,
		TotalPrice:       1000,
		Status:           StatusConfirmed,
		ContactEmail:     "asha@example.com",
		TravelOption:     option,
	}
}

func TestCancelBookingRefundTiers(t *testing.T) {
	tests := []struct {
		name        string
		departureIn time.Duration
		wantAmount  float64
		wantRate    float64
	}{
		{"more than 24h out", 30 * time.Hour, 900, 0.90},
		{"between 6h and 24h", 10 * time.Hour, 500, 0.50},
		{"between cutoff and 6h", 3 * time.Hour, 250, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := uuid.New()
			booking := confirmedBooking(userID, tt.departureIn)

			repo := new(mockRepository)
			repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

			cancelled := *booking
			cancelled.Status = StatusCancelled
			repo.On("CancelWithSeatRelease", mock.Anything, booking.ID, "plans changed", mock.Anything).
				Return(&cancelled, nil)

			cancellations := new(mockCancellationService)
			cancellations.On("Record", mock.Anything, mock.MatchedBy(func(r *cancellation.Cancellation) bool {
				return r.BookingID == booking.ID && r.RefundAmount == tt.wantAmount
			})).Return(nil)

			svc := newTestService(repo, new(mockTravelRepository), cancellations)
			resp, err := svc.CancelBooking(context.Background(), userID, booking.ID, "plans changed")

			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, resp.RefundAmount)
			assert.Equal(t, tt.wantRate, resp.RefundRate)
			assert.Equal(t, string(StatusCancelled), resp.Booking.Status)
			cancellations.AssertExpectations(t)
		})
	}
}

func TestCancelBookingWindowClosed(t *testing.T) {
	userID := uuid.New()
	booking := confirmedBooking(userID, time.Hour)

	repo := new(mockRepository)
	repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

	svc := newTestService(repo, new(mockTravelRepository), new(mockCancellationService))
	_, err := svc.CancelBooking(context.Background(), userID, booking.ID, "")

	assert.ErrorIs(t, err, ErrInvalidTransition)
	repo.AssertNotCalled(t, "CancelWithSeatRelease", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBookingAlreadyCancelled(t *testing.T) {
	userID := uuid.New()
	booking := confirmedBooking(userID, 48*time.Hour)
	booking.Status = StatusCancelled

	repo := new(mockRepository)
	repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

	svc := newTestService(repo, new(mockTravelRepository), new(mockCancellationService))
	_, err := svc.CancelBooking(context.Background(), userID, booking.ID, "")

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancelBookingForbidden(t *testing.T) {
	owner := uuid.New()
	booking := confirmedBooking(owner, 48*time.Hour)

	repo := new(mockRepository)
	repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

	svc := newTestService(repo, new(mockTravelRepository), new(mockCancellationService))
	_, err := svc.CancelBooking(context.Background(), uuid.New(), booking.ID, "")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCancelBookingSucceedsWhenAuditFails(t *testing.T) {
	userID := uuid.New()
	booking := confirmedBooking(userID, 30*time.Hour)

	repo := new(mockRepository)
	repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

	cancelled := *booking
	cancelled.Status = StatusCancelled
	repo.On("CancelWithSeatRelease", mock.Anything, booking.ID, "", mock.Anything).
		Return(&cancelled, nil)

	cancellations := new(mockCancellationService)
	cancellations.On("Record", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	svc := newTestService(repo, new(mockTravelRepository), cancellations)
	resp, err := svc.CancelBooking(context.Background(), userID, booking.ID, "")

	require.NoError(t, err)
	assert.Equal(t, 900.0, resp.RefundAmount)
}

func TestGetRefundQuote(t *testing.T) {
	t.Run("cancellable booking", func(t *testing.T) {
		userID := uuid.New()
		booking := confirmedBooking(userID, 30*time.Hour)

		repo := new(mockRepository)
		repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

		svc := newTestService(repo, new(mockTravelRepository), new(mockCancellationService))
		quote, err := svc.GetRefundQuote(context.Background(), userID, booking.ID)

		require.NoError(t, err)
		assert.True(t, quote.Cancellable)
		assert.Equal(t, 0.90, quote.RefundRate)
		assert.Equal(t, 900.0, quote.RefundAmount)
		assert.InDelta(t, 30, quote.HoursToDeparture, 0.1)
	})

	t.Run("inside cutoff", func(t *testing.T) {
		userID := uuid.New()
		booking := confirmedBooking(userID, 30*time.Minute)

		repo := new(mockRepository)
		repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

		svc := newTestService(repo, new(mockTravelRepository), new(mockCancellationService))
		quote, err := svc.GetRefundQuote(context.Background(), userID, booking.ID)

		require.NoError(t, err)
		assert.False(t, quote.Cancellable)
		assert.Zero(t, quote.RefundAmount)
	})

	t.Run("cancelled booking is not cancellable", func(t *testing.T) {
		userID := uuid.New()
		booking := confirmedBooking(userID, 30*time.Hour)
		booking.Status = StatusCancelled

		repo := new(mockRepository)
		repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

		svc := newTestService(repo, new(mockTravelRepository), new(mockCancellationService))
		quote, err := svc.GetRefundQuote(context.Background(), userID, booking.ID)

		require.NoError(t, err)
		assert.False(t, quote.Cancellable)
	})
}

func TestGetBookingOwnership(t *testing.T) {
	owner := uuid.New()
	booking := confirmedBooking(owner, 48*time.Hour)

	repo := new(mockRepository)
	repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

	svc := newTestService(repo, new(mockTravelRepository), new(mockCancellationService))

	_, err := svc.GetBooking(context.Background(), uuid.New(), booking.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	resp, err := svc.GetBooking(context.Background(), owner, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.BookingReference, resp.BookingReference)
}

func TestGetUserBookingsDefaultsPagination(t *testing.T) {
	userID := uuid.New()

	repo := new(mockRepository)
	repo.On("GetUserBookings", mock.Anything, userID, BookingListQuery{Page: 1, Limit: 10}).
		Return([]Booking{}, int64(0), nil)

	svc := newTestService(repo, new(mockTravelRepository), new(mockCancellationService))
	result, err := svc.GetUserBookings(context.Background(), userID, BookingListQuery{})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 10, result.Limit)
	repo.AssertExpectations(t)
}
