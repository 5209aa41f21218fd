package cancellation

import (
	"context"
	"fmt"
	"time"

	"wayfare/pkg/logger"

	"github.com/google/uuid"
)

type Service interface {
	// Record writes the audit record for a cancellation that has already been
	// committed against the booking. The refund is marked processed
	// immediately; there is no external payment gateway in the loop.
	Record(ctx context.Context, record *Cancellation) error

	GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*Cancellation, error)
	GetUserCancellations(ctx context.Context, userID uuid.UUID, page, limit int) ([]Cancellation, int64, error)
}

type service struct {
	repo   Repository
	policy RefundPolicy
}

func NewService(repo Repository, policy RefundPolicy) Service {
	return &service{repo: repo, policy: policy}
}

func (s *service) Record(ctx context.Context, record *Cancellation) error {
	record.MarkProcessed(time.Now().UTC())

	if err := s.repo.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to record cancellation: %w", err)
	}

	logger.BookingCancelled(record.BookingReference, record.UserID.String(), record.RefundAmount)
	return nil
}

func (s *service) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*Cancellation, error) {
	return s.repo.GetByBookingID(ctx, bookingID)
}

func (s *service) GetUserCancellations(ctx context.Context, userID uuid.UUID, page, limit int) ([]Cancellation, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit
	return s.repo.GetUserCancellations(ctx, userID, limit, offset)
}
