package cancellation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("cancellation not found")

type Repository interface {
	Create(ctx context.Context, cancellation *Cancellation) error
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*Cancellation, error)
	GetUserCancellations(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Cancellation, int64, error)
	Update(ctx context.Context, cancellation *Cancellation) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, cancellation *Cancellation) error {
	return r.db.WithContext(ctx).Create(cancellation).Error
}

func (r *repository) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*Cancellation, error) {
	var cancellation Cancellation
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		First(&cancellation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cancellation, nil
}

func (r *repository) GetUserCancellations(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Cancellation, int64, error) {
	var cancellations []Cancellation
	var totalCount int64

	baseQuery := r.db.WithContext(ctx).
		Model(&Cancellation{}).
		Where("user_id = ?", userID)

	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	err := baseQuery.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&cancellations).Error

	return cancellations, totalCount, err
}

func (r *repository) Update(ctx context.Context, cancellation *Cancellation) error {
	return r.db.WithContext(ctx).Save(cancellation).Error
}
