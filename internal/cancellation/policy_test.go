package cancellation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefundPolicyRate(t *testing.T) {
	policy := NewRefundPolicy(2 * time.Hour)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		toDepart time.Duration
		want     float64
	}{
		{"well before departure", 72 * time.Hour, 0.90},
		{"just over 24h", 24*time.Hour + time.Minute, 0.90},
		{"exactly 24h", 24 * time.Hour, 0.50},
		{"10 hours out", 10 * time.Hour, 0.50},
		{"exactly 6h", 6 * time.Hour, 0.25},
		{"3 hours out", 3 * time.Hour, 0.25},
		{"just over cutoff", 2*time.Hour + time.Second, 0.25},
		{"exactly at cutoff", 2 * time.Hour, 0},
		{"inside cutoff", 1 * time.Hour, 0},
		{"already departed", -1 * time.Hour, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			departure := now.Add(tt.toDepart)
			assert.InDelta(t, tt.want, policy.Rate(departure, now), 1e-9)
		})
	}
}

func TestRefundPolicyCancellable(t *testing.T) {
	policy := NewRefundPolicy(2 * time.Hour)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.True(t, policy.Cancellable(now.Add(2*time.Hour+time.Second), now))
	assert.False(t, policy.Cancellable(now.Add(2*time.Hour), now))
	assert.False(t, policy.Cancellable(now.Add(30*time.Minute), now))
	assert.False(t, policy.Cancellable(now.Add(-time.Hour), now))
}

func TestRefundPolicyAmount(t *testing.T) {
	policy := NewRefundPolicy(2 * time.Hour)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		toDepart time.Duration
		price    float64
		want     float64
	}{
		{"90 percent tier", 30 * time.Hour, 1000, 900},
		{"50 percent tier", 10 * time.Hour, 1000, 500},
		{"25 percent tier", 3 * time.Hour, 1000, 250},
		{"window closed", 1 * time.Hour, 1000, 0},
		{"rounds to cents", 30 * time.Hour, 33.33, 30},
		{"half-cent rounds up", 10 * time.Hour, 0.99, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.RefundAmount(tt.price, now.Add(tt.toDepart), now)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

// Refunds should never increase as departure approaches.
func TestRefundPolicyMonotonic(t *testing.T) {
	policy := NewRefundPolicy(2 * time.Hour)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	prev := 1.0
	for h := 100; h >= 0; h-- {
		rate := policy.Rate(now.Add(time.Duration(h)*time.Hour), now)
		assert.LessOrEqual(t, rate, prev, "rate increased at %dh before departure", h)
		prev = rate
	}
}
