package cancellation

import (
	"time"

	"github.com/google/uuid"
)

// RefundStatus tracks the refund side of a cancellation. The seat release is
// transactional with the booking update; the refund payout is not, so it gets
// its own state.
type RefundStatus string

const (
	RefundPending   RefundStatus = "PENDING"
	RefundProcessed RefundStatus = "PROCESSED"
	RefundFailed    RefundStatus = "FAILED"
)

func (s RefundStatus) IsValid() bool {
	switch s {
	case RefundPending, RefundProcessed, RefundFailed:
		return true
	}
	return false
}

// Cancellation is the audit record written when a booking is cancelled. One
// booking has at most one cancellation.
type Cancellation struct {
	ID               uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingID        uuid.UUID    `gorm:"type:uuid;uniqueIndex;not null" json:"booking_id"`
	UserID           uuid.UUID    `gorm:"type:uuid;index;not null" json:"user_id"`
	BookingReference string       `gorm:"size:20;not null" json:"booking_reference"`
	Reason           string       `gorm:"type:text" json:"reason,omitempty"`
	RefundAmount     float64      `gorm:"not null" json:"refund_amount"`
	RefundRate       float64      `gorm:"not null" json:"refund_rate"`
	RefundStatus     RefundStatus `gorm:"type:varchar(15);default:'PENDING';check:refund_status IN ('PENDING', 'PROCESSED', 'FAILED')" json:"refund_status"`
	ProcessedAt      *time.Time   `json:"processed_at,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

func (Cancellation) TableName() string {
	return "cancellations"
}

// MarkProcessed records a completed refund payout.
func (c *Cancellation) MarkProcessed(at time.Time) {
	c.RefundStatus = RefundProcessed
	c.ProcessedAt = &at
	c.UpdatedAt = at
}
