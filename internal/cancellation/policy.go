package cancellation

import (
	"math"
	"time"
)

// RefundPolicy computes refunds from time-to-departure. Tiers are evaluated
// against the moment the cancellation is requested, not the booking time:
//
//	more than 24h before departure: 90%
//	6h to 24h:                      50%
//	2h to 6h:                       25%
//	2h or less:                     not cancellable
type RefundPolicy struct {
	// Cutoff is the minimum time before departure at which cancellation is
	// still allowed.
	Cutoff time.Duration
}

func NewRefundPolicy(cutoff time.Duration) RefundPolicy {
	return RefundPolicy{Cutoff: cutoff}
}

// Cancellable reports whether a booking departing at departure may still be
// cancelled at now.
func (p RefundPolicy) Cancellable(departure, now time.Time) bool {
	return departure.Sub(now) > p.Cutoff
}

// Rate returns the refund fraction for a cancellation at now. It returns 0
// when the window has closed.
func (p RefundPolicy) Rate(departure, now time.Time) float64 {
	remaining := departure.Sub(now)
	switch {
	case remaining > 24*time.Hour:
		return 0.90
	case remaining > 6*time.Hour:
		return 0.50
	case remaining > p.Cutoff:
		return 0.25
	default:
		return 0
	}
}

// RefundAmount applies the rate to the booking's total price, rounded to two
// decimals.
func (p RefundPolicy) RefundAmount(totalPrice float64, departure, now time.Time) float64 {
	return math.Round(totalPrice*p.Rate(departure, now)*100) / 100
}
