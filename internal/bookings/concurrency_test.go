package bookings

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"wayfare/internal/travel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeSeatStore mimics the transactional repository: every reservation runs
// under one mutex, the same serialization the row lock provides in Postgres.
type fakeSeatStore struct {
	mu      sync.Mutex
	option  *travel.TravelOption
	created []*Booking
}

func newFakeSeatStore(option *travel.TravelOption) *fakeSeatStore {
	return &fakeSeatStore{option: option}
}

func (f *fakeSeatStore) CreateWithSeatReservation(ctx context.Context, booking *Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if booking.TravelOptionID != f.option.ID {
		return travel.ErrNotFound
	}
	for _, existing := range f.created {
		if existing.BookingReference == booking.BookingReference {
			return ErrDuplicateReference
		}
	}

	if err := f.option.ReserveSeats(booking.NumberOfSeats); err != nil {
		return err
	}

	booking.ID = uuid.New()
	booking.TotalPrice = f.option.Price * float64(booking.NumberOfSeats)
	f.created = append(f.created, booking)
	return nil
}

func (f *fakeSeatStore) CancelWithSeatRelease(ctx context.Context, bookingID uuid.UUID, reason string, now time.Time) (*Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, booking := range f.created {
		if booking.ID != bookingID {
			continue
		}
		if !booking.Status.CanTransitionTo(StatusCancelled) {
			return nil, ErrInvalidTransition
		}
		booking.Cancel(reason, now)
		if err := f.option.ReleaseSeats(booking.NumberOfSeats); err != nil {
			return nil, err
		}
		copied := *booking
		return &copied, nil
	}
	return nil, ErrNotFound
}

func (f *fakeSeatStore) ConfirmBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error) {
	return nil, errors.New("not used")
}

func (f *fakeSeatStore) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, booking := range f.created {
		if booking.ID == id {
			copied := *booking
			copied.TravelOption = f.optionCopy()
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeSeatStore) GetUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) ([]Booking, int64, error) {
	return nil, 0, errors.New("not used")
}

func (f *fakeSeatStore) optionCopy() *travel.TravelOption {
	copied := *f.option
	return &copied
}

// fakeTravelRepo serves snapshots of the store's option, the way the real
// repository reads committed rows.
type fakeTravelRepo struct {
	store *fakeSeatStore
}

func (f *fakeTravelRepo) GetByID(ctx context.Context, id uuid.UUID) (*travel.TravelOption, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if id != f.store.option.ID {
		return nil, travel.ErrNotFound
	}
	return f.store.optionCopy(), nil
}

func (f *fakeTravelRepo) Create(ctx context.Context, option *travel.TravelOption) error {
	return errors.New("not used")
}
func (f *fakeTravelRepo) Update(ctx context.Context, option *travel.TravelOption) error {
	return errors.New("not used")
}
func (f *fakeTravelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.New("not used")
}
func (f *fakeTravelRepo) FindAvailable(ctx context.Context, query travel.TravelListQuery) ([]travel.TravelOption, int64, error) {
	return nil, 0, errors.New("not used")
}
func (f *fakeTravelRepo) GetUpcoming(ctx context.Context, limit int) ([]travel.TravelOption, error) {
	return nil, errors.New("not used")
}
func (f *fakeTravelRepo) CountReferencingBookings(ctx context.Context, id uuid.UUID) (int64, error) {
	return 0, errors.New("not used")
}

func TestConcurrentBookingsNeverOverbook(t *testing.T) {
	option := activeOption(48 * time.Hour)
	option.TotalSeats = 10
	option.AvailableSeats = 10

	store := newFakeSeatStore(option)
	svc := newTestService(store, &fakeTravelRepo{store: store}, new(mockCancellationService))

	const attempts = 40
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := CreateBookingRequest{
				TravelOptionID: option.ID,
				NumberOfSeats:  2,
				Passengers: []PassengerInput{
					{Name: "Traveller One"},
					{Name: "Traveller Two"},
				},
				ContactEmail: "traveller@example.com",
			}
			_, err := svc.CreateBooking(context.Background(), uuid.New(), req)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, travel.ErrUnavailable)
	}

	// 10 seats, 2 per booking: exactly 5 can win.
	assert.Equal(t, 5, succeeded)
	assert.Equal(t, 0, option.AvailableSeats)
	assert.Equal(t, travel.StatusFull, option.Status)

	reserved := 0
	for _, booking := range store.created {
		reserved += booking.NumberOfSeats
	}
	assert.Equal(t, option.TotalSeats, reserved)
}

func TestDoubleCancelReleasesSeatsOnce(t *testing.T) {
	option := activeOption(48 * time.Hour)
	option.TotalSeats = 10
	option.AvailableSeats = 10

	store := newFakeSeatStore(option)
	svc := newTestService(store, &fakeTravelRepo{store: store}, new(mockCancellationService))

	userID := uuid.New()
	req := CreateBookingRequest{
		TravelOptionID: option.ID,
		NumberOfSeats:  2,
		Passengers: []PassengerInput{
			{Name: "Traveller One"},
			{Name: "Traveller Two"},
		},
		ContactEmail: "traveller@example.com",
	}
	created, err := svc.CreateBooking(context.Background(), userID, req)
	require.NoError(t, err)
	assert.Equal(t, 8, option.AvailableSeats)

	cancellations := new(mockCancellationService)
	cancellations.On("Record", mock.Anything, mock.Anything).Return(nil)
	svc = newTestService(store, &fakeTravelRepo{store: store}, cancellations)

	_, err = svc.CancelBooking(context.Background(), userID, created.ID, "plans changed")
	require.NoError(t, err)
	assert.Equal(t, 10, option.AvailableSeats)

	_, err = svc.CancelBooking(context.Background(), userID, created.ID, "plans changed")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 10, option.AvailableSeats)
}
