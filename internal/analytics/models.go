package analytics

import (
	"wayfare/internal/travel"
)

// HomeStats is the public landing-page summary.
type HomeStats struct {
	TotalDestinations int64 `json:"total_destinations"`
	ActiveRoutes      int64 `json:"active_routes"`
	HappyCustomers    int64 `json:"happy_customers"`
	AvailableToday    int64 `json:"available_today"`
}

// HomeOverview bundles the stats with a short list of featured departures.
type HomeOverview struct {
	FeaturedTravels []travel.TravelOptionResponse `json:"featured_travels"`
	Stats           HomeStats                     `json:"stats"`
}

// BookingOverview is the admin-facing booking summary.
type BookingOverview struct {
	TotalBookings     int64   `json:"total_bookings"`
	ConfirmedBookings int64   `json:"confirmed_bookings"`
	CancelledBookings int64   `json:"cancelled_bookings"`
	RefundedBookings  int64   `json:"refunded_bookings"`
	TotalSeatsSold    int64   `json:"total_seats_sold"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalRefunded     float64 `json:"total_refunded"`
}

// DailyBookingStats is one day's booking volume.
type DailyBookingStats struct {
	Date     string  `json:"date"`
	Bookings int64   `json:"bookings"`
	Seats    int64   `json:"seats"`
	Revenue  float64 `json:"revenue"`
}
