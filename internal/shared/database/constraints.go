package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds indexes the booking flow depends on. The unique
// constraints on bookings.booking_reference and travel_options.travel_code
// come from the model tags; these cover the hot query paths.
func MigrateConstraints(db *gorm.DB) error {
	// Route search: source/destination lookups on the travel list
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_travel_options_route
		ON travel_options (source, destination);
	`).Error
	if err != nil {
		return err
	}

	// Upcoming departures ordering
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_travel_options_departure
		ON travel_options (departure_time);
	`).Error
	if err != nil {
		return err
	}

	// User booking history, newest first
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_user_created
		ON bookings (user_id, created_at DESC);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
