package travel

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("travel option not found")

// ErrHasBookings is returned when deleting an option that bookings still
// reference. Options with booking history are never physically deleted.
var ErrHasBookings = errors.New("travel option has active bookings")

type Repository interface {
	Create(ctx context.Context, option *TravelOption) error
	GetByID(ctx context.Context, id uuid.UUID) (*TravelOption, error)
	Update(ctx context.Context, option *TravelOption) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAvailable(ctx context.Context, query TravelListQuery) ([]TravelOption, int64, error)
	GetUpcoming(ctx context.Context, limit int) ([]TravelOption, error)
	CountReferencingBookings(ctx context.Context, id uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, option *TravelOption) error {
	return r.db.WithContext(ctx).Create(option).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*TravelOption, error) {
	var option TravelOption
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&option).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &option, nil
}

func (r *repository) Update(ctx context.Context, option *TravelOption) error {
	return r.db.WithContext(ctx).Save(option).Error
}

// Delete removes a travel option. Deletion is protected: it fails while any
// booking row still references the option, regardless of booking status.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	count, err := r.CountReferencingBookings(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrHasBookings
	}

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&TravelOption{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) FindAvailable(ctx context.Context, query TravelListQuery) ([]TravelOption, int64, error) {
	var options []TravelOption
	var totalCount int64

	// Set defaults
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	baseQuery := r.db.WithContext(ctx).
		Model(&TravelOption{}).
		Where("status = ?", StatusActive).
		Where("departure_time >= ?", time.Now().UTC())

	baseQuery = r.applyFilters(baseQuery, query)

	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := baseQuery.
		Order("departure_time ASC").
		Offset(offset).
		Limit(query.Limit).
		Find(&options).Error

	return options, totalCount, err
}

func (r *repository) applyFilters(db *gorm.DB, query TravelListQuery) *gorm.DB {
	if query.Type != "" {
		db = db.Where("type = ?", query.Type)
	}
	if query.Source != "" {
		db = db.Where("source ILIKE ?", "%"+query.Source+"%")
	}
	if query.Destination != "" {
		db = db.Where("destination ILIKE ?", "%"+query.Destination+"%")
	}
	if query.DateFrom != "" {
		if dateFrom, err := time.Parse("2006-01-02", query.DateFrom); err == nil {
			db = db.Where("departure_time >= ?", dateFrom)
		}
	}
	if query.DateTo != "" {
		if dateTo, err := time.Parse("2006-01-02", query.DateTo); err == nil {
			db = db.Where("departure_time < ?", dateTo.AddDate(0, 0, 1))
		}
	}
	if query.MinPrice > 0 {
		db = db.Where("price >= ?", query.MinPrice)
	}
	if query.MaxPrice > 0 {
		db = db.Where("price <= ?", query.MaxPrice)
	}
	return db
}

func (r *repository) GetUpcoming(ctx context.Context, limit int) ([]TravelOption, error) {
	var options []TravelOption
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusActive).
		Where("departure_time >= ?", time.Now().UTC()).
		Order("departure_time ASC").
		Limit(limit).
		Find(&options).Error
	return options, err
}

func (r *repository) CountReferencingBookings(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("bookings").
		Where("travel_option_id = ?", id).
		Count(&count).Error
	return count, err
}
