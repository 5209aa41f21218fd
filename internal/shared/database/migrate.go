package database

import (
	"wayfare/internal/bookings"
	"wayfare/internal/cancellation"
	"wayfare/internal/travel"
	"wayfare/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&users.UserProfile{},
		&travel.TravelOption{},
		&bookings.Booking{},
		&cancellation.Cancellation{},
	)
}
