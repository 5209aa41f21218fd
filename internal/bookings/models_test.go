package bookings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassengerListScanRoundTrip(t *testing.T) {
	original := PassengerList{
		{Name: "Asha Patel", SeatNumber: "12"},
		{Name: "Diego Moreno", SeatNumber: "13"},
	}

	value, err := original.Value()
	require.NoError(t, err)

	var decoded PassengerList
	require.NoError(t, decoded.Scan(value))

	assert.Equal(t, original, decoded)
}

func TestPassengerListScanNil(t *testing.T) {
	var list PassengerList
	require.NoError(t, list.Scan(nil))
	assert.Nil(t, list)
}

func TestPassengerListScanWrongType(t *testing.T) {
	var list PassengerList
	assert.Error(t, list.Scan(42))
}

func TestBookingCancel(t *testing.T) {
	booking := &Booking{Status: StatusConfirmed}
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	booking.Cancel("change of plans", at)

	assert.Equal(t, StatusCancelled, booking.Status)
	require.NotNil(t, booking.CancelledAt)
	assert.Equal(t, at, *booking.CancelledAt)
	assert.Equal(t, "change of plans", booking.CancellationReason)
	assert.True(t, booking.IsCancelled())
}

func TestBookingIsCancellable(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	cutoff := 2 * time.Hour

	tests := []struct {
		name      string
		status    Status
		departure time.Time
		want      bool
	}{
		{"confirmed outside cutoff", StatusConfirmed, now.Add(3 * time.Hour), true},
		{"confirmed at cutoff", StatusConfirmed, now.Add(2 * time.Hour), false},
		{"confirmed inside cutoff", StatusConfirmed, now.Add(time.Hour), false},
		{"pending never cancellable", StatusPending, now.Add(48 * time.Hour), false},
		{"already cancelled", StatusCancelled, now.Add(48 * time.Hour), false},
		{"refunded", StatusRefunded, now.Add(48 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := &Booking{Status: tt.status}
			assert.Equal(t, tt.want, booking.IsCancellable(tt.departure, now, cutoff))
		})
	}
}
