package analytics

import (
	"context"
	"fmt"
	"time"

	"wayfare/internal/bookings"
	"wayfare/internal/travel"

	"gorm.io/gorm"
)

type Repository interface {
	GetHomeStats(ctx context.Context) (*HomeStats, error)
	GetFeaturedTravels(ctx context.Context, limit int) ([]travel.TravelOption, error)
	GetBookingOverview(ctx context.Context) (*BookingOverview, error)
	GetDailyBookingStats(ctx context.Context, days int) ([]DailyBookingStats, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetHomeStats(ctx context.Context) (*HomeStats, error) {
	stats := &HomeStats{}
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	err := r.db.WithContext(ctx).Model(&travel.TravelOption{}).
		Distinct("destination").
		Count(&stats.TotalDestinations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count destinations: %w", err)
	}

	err = r.db.WithContext(ctx).Model(&travel.TravelOption{}).
		Where("status = ?", travel.StatusActive).
		Count(&stats.ActiveRoutes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count active routes: %w", err)
	}

	err = r.db.WithContext(ctx).Model(&bookings.Booking{}).
		Where("status = ?", bookings.StatusConfirmed).
		Distinct("user_id").
		Count(&stats.HappyCustomers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	err = r.db.WithContext(ctx).Model(&travel.TravelOption{}).
		Where("status = ? AND departure_time >= ? AND departure_time < ?",
			travel.StatusActive, dayStart, dayEnd).
		Count(&stats.AvailableToday).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count departures today: %w", err)
	}

	return stats, nil
}

func (r *repository) GetFeaturedTravels(ctx context.Context, limit int) ([]travel.TravelOption, error) {
	var options []travel.TravelOption
	err := r.db.WithContext(ctx).
		Where("status = ? AND departure_time >= ?", travel.StatusActive, time.Now().UTC()).
		Order("departure_time ASC").
		Limit(limit).
		Find(&options).Error
	return options, err
}

func (r *repository) GetBookingOverview(ctx context.Context) (*BookingOverview, error) {
	overview := &BookingOverview{}

	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	err := r.db.WithContext(ctx).Model(&bookings.Booking{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings by status: %w", err)
	}

	for _, c := range counts {
		overview.TotalBookings += c.Count
		switch bookings.Status(c.Status) {
		case bookings.StatusConfirmed:
			overview.ConfirmedBookings = c.Count
		case bookings.StatusCancelled:
			overview.CancelledBookings = c.Count
		case bookings.StatusRefunded:
			overview.RefundedBookings = c.Count
		}
	}

	type revenueRow struct {
		Seats   int64
		Revenue float64
	}
	var rev revenueRow
	err = r.db.WithContext(ctx).Model(&bookings.Booking{}).
		Select("COALESCE(SUM(number_of_seats), 0) as seats, COALESCE(SUM(total_price), 0) as revenue").
		Where("status = ?", bookings.StatusConfirmed).
		Scan(&rev).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	overview.TotalSeatsSold = rev.Seats
	overview.TotalRevenue = rev.Revenue

	var refunded float64
	err = r.db.WithContext(ctx).Table("cancellations").
		Select("COALESCE(SUM(refund_amount), 0)").
		Scan(&refunded).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum refunds: %w", err)
	}
	overview.TotalRefunded = refunded

	return overview, nil
}

func (r *repository) GetDailyBookingStats(ctx context.Context, days int) ([]DailyBookingStats, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)

	var stats []DailyBookingStats
	err := r.db.WithContext(ctx).Model(&bookings.Booking{}).
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') as date, "+
			"COUNT(*) as bookings, "+
			"COALESCE(SUM(number_of_seats), 0) as seats, "+
			"COALESCE(SUM(total_price), 0) as revenue").
		Where("created_at >= ?", since).
		Group("TO_CHAR(created_at, 'YYYY-MM-DD')").
		Order("date ASC").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily bookings: %w", err)
	}

	return stats, nil
}
