package bookings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func bookingWithSeats(status Status, seats ...string) Booking {
	passengers := make(PassengerList, len(seats))
	for i, seat := range seats {
		passengers[i] = Passenger{Name: "Traveller", SeatNumber: seat}
	}
	return Booking{Status: status, NumberOfSeats: len(seats), PassengerDetails: passengers}
}

func labelsOf(passengers PassengerList) []string {
	labels := make([]string, len(passengers))
	for i, p := range passengers {
		labels[i] = p.SeatNumber
	}
	return labels
}

func TestAssignSeatLabelsSequentialWhenEmpty(t *testing.T) {
	passengers := PassengerList{{Name: "A"}, {Name: "B"}, {Name: "C"}}
	assignSeatLabels(passengers, takenSeatLabels(nil))
	assert.Equal(t, []string{"1", "2", "3"}, labelsOf(passengers))
}

func TestAssignSeatLabelsSkipsHeldSeats(t *testing.T) {
	active := []Booking{bookingWithSeats(StatusConfirmed, "2", "4")}

	passengers := PassengerList{{Name: "A"}, {Name: "B"}, {Name: "C"}}
	assignSeatLabels(passengers, takenSeatLabels(active))

	assert.Equal(t, []string{"1", "3", "5"}, labelsOf(passengers))
}

// Booking 1-2 and 3-4, cancelling the first, then booking two more seats must
// reuse 1-2; handing out 3-4 again would seat two parties in the same chairs.
func TestSeatLabelsAfterCancellationDoNotCollide(t *testing.T) {
	first := bookingWithSeats(StatusConfirmed)
	first.PassengerDetails = PassengerList{{Name: "A"}, {Name: "B"}}
	assignSeatLabels(first.PassengerDetails, takenSeatLabels(nil))
	assert.Equal(t, []string{"1", "2"}, labelsOf(first.PassengerDetails))

	second := bookingWithSeats(StatusConfirmed)
	second.PassengerDetails = PassengerList{{Name: "C"}, {Name: "D"}}
	assignSeatLabels(second.PassengerDetails, takenSeatLabels([]Booking{first}))
	assert.Equal(t, []string{"3", "4"}, labelsOf(second.PassengerDetails))

	first.Status = StatusCancelled

	// Only PENDING and CONFIRMED bookings hold seats.
	active := []Booking{second}
	third := bookingWithSeats(StatusConfirmed)
	third.PassengerDetails = PassengerList{{Name: "E"}, {Name: "F"}}
	assignSeatLabels(third.PassengerDetails, takenSeatLabels(active))

	assert.Equal(t, []string{"1", "2"}, labelsOf(third.PassengerDetails))
	assert.NotElementsMatch(t, labelsOf(second.PassengerDetails), labelsOf(third.PassengerDetails))
}

func TestTakenSeatLabelsIgnoresUnlabeled(t *testing.T) {
	active := []Booking{bookingWithSeats(StatusConfirmed, "", "7")}
	taken := takenSeatLabels(active)

	assert.True(t, taken[7])
	assert.Len(t, taken, 1)
}
