package bookings

// Status represents the lifecycle state of a booking.
//
// PENDING is transient; CANCELLED and REFUNDED are terminal. CONFIRMED is
// terminal with respect to normal completion (the passenger travels), and is
// the only state a cancellation may start from.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusRefunded  Status = "REFUNDED"
)

// transitions is the exhaustive transition table for booking statuses.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed},
	StatusConfirmed: {StatusCancelled, StatusRefunded},
	StatusCancelled: {},
	StatusRefunded:  {},
}

// IsValid checks if the booking status is valid
func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo reports whether the transition table permits moving from
// s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// IsActive checks if the booking still holds seats (not cancelled or refunded)
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}
