package travel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOption(total, available int, status Status) *TravelOption {
	return &TravelOption{
		TotalSeats:     total,
		AvailableSeats: available,
		Status:         status,
	}
}

func TestReserveSeats(t *testing.T) {
	t.Run("decrements availability", func(t *testing.T) {
		option := newOption(100, 50, StatusActive)
		require.NoError(t, option.ReserveSeats(3))
		assert.Equal(t, 47, option.AvailableSeats)
		assert.Equal(t, StatusActive, option.Status)
	})

	t.Run("last seat flips status to full", func(t *testing.T) {
		option := newOption(100, 2, StatusActive)
		require.NoError(t, option.ReserveSeats(2))
		assert.Equal(t, 0, option.AvailableSeats)
		assert.Equal(t, StatusFull, option.Status)
		assert.False(t, option.IsAvailable())
	})

	t.Run("rejects more than available", func(t *testing.T) {
		option := newOption(100, 2, StatusActive)
		err := option.ReserveSeats(3)
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.Equal(t, 2, option.AvailableSeats)
	})

	t.Run("rejects cancelled option", func(t *testing.T) {
		option := newOption(100, 50, StatusCancelled)
		assert.ErrorIs(t, option.ReserveSeats(1), ErrUnavailable)
	})

	t.Run("rejects full option", func(t *testing.T) {
		option := newOption(100, 0, StatusFull)
		assert.ErrorIs(t, option.ReserveSeats(1), ErrUnavailable)
	})

	t.Run("rejects non-positive count", func(t *testing.T) {
		option := newOption(100, 50, StatusActive)
		assert.Error(t, option.ReserveSeats(0))
		assert.Error(t, option.ReserveSeats(-5))
	})
}

func TestReleaseSeats(t *testing.T) {
	t.Run("returns seats to the pool", func(t *testing.T) {
		option := newOption(100, 40, StatusActive)
		require.NoError(t, option.ReleaseSeats(5))
		assert.Equal(t, 45, option.AvailableSeats)
	})

	t.Run("full option becomes active again", func(t *testing.T) {
		option := newOption(100, 0, StatusFull)
		require.NoError(t, option.ReleaseSeats(2))
		assert.Equal(t, 2, option.AvailableSeats)
		assert.Equal(t, StatusActive, option.Status)
	})

	t.Run("never exceeds total seats", func(t *testing.T) {
		option := newOption(100, 99, StatusActive)
		require.NoError(t, option.ReleaseSeats(5))
		assert.Equal(t, 100, option.AvailableSeats)
	})

	t.Run("cancelled stays cancelled", func(t *testing.T) {
		option := newOption(100, 0, StatusCancelled)
		require.NoError(t, option.ReleaseSeats(1))
		assert.Equal(t, StatusCancelled, option.Status)
	})
}

func TestReserveReleaseRoundTrip(t *testing.T) {
	option := newOption(10, 10, StatusActive)

	require.NoError(t, option.ReserveSeats(10))
	assert.Equal(t, StatusFull, option.Status)

	require.NoError(t, option.ReleaseSeats(10))
	assert.Equal(t, 10, option.AvailableSeats)
	assert.Equal(t, StatusActive, option.Status)
}

func TestOccupancyRate(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		available int
		want      float64
	}{
		{"empty", 100, 100, 0},
		{"half", 100, 50, 50},
		{"full", 100, 0, 100},
		{"rounds to 2 decimals", 3, 2, 33.33},
		{"two thirds", 3, 1, 66.67},
		{"zero total is guarded", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			option := newOption(tt.total, tt.available, StatusActive)
			assert.InDelta(t, tt.want, option.OccupancyRate(), 1e-9)
		})
	}
}

func TestDuration(t *testing.T) {
	departure := time.Date(2026, 3, 10, 8, 15, 0, 0, time.UTC)

	option := &TravelOption{
		DepartureTime: departure,
		ArrivalTime:   departure.Add(3*time.Hour + 45*time.Minute),
	}
	assert.Equal(t, "3h 45m", option.Duration())

	option.ArrivalTime = departure.Add(26 * time.Hour)
	assert.Equal(t, "26h 0m", option.Duration())
}

func TestTravelTypePrefix(t *testing.T) {
	assert.Equal(t, "FL", TypeFlight.Prefix())
	assert.Equal(t, "TR", TypeTrain.Prefix())
	assert.Equal(t, "BU", TypeBus.Prefix())
}
