package main

import (
	"fmt"
	"log"
	"time"

	"wayfare/internal/shared/config"
	"wayfare/internal/shared/database"
	"wayfare/internal/travel"
	"wayfare/internal/users"

	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("Starting Wayfare database seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}

	fmt.Println("Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("Seeding completed. Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order.
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"cancellations",
		"bookings",
		"travel_options",
		"user_profiles",
		"users",
	}

	for _, table := range tables {
		if err := s.db.PostgreSQL.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			// Table may not exist yet on a fresh database.
			log.Printf("Skipping %s: %v", table, err)
		}
	}
	return nil
}

func (s *Seeder) SeedAll() error {
	if err := s.seedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	if err := s.seedTravelOptions(); err != nil {
		return fmt.Errorf("failed to seed travel options: %w", err)
	}
	return nil
}

func (s *Seeder) seedUsers() error {
	password, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	seedUsers := []users.User{
		{
			FirstName: "Admin",
			LastName:  "User",
			Email:     "admin@wayfare.dev",
			Password:  string(password),
			Role:      users.RoleAdmin,
		},
		{
			FirstName: "Asha",
			LastName:  "Patel",
			Email:     "asha@example.com",
			Password:  string(password),
			Role:      users.RoleUser,
		},
		{
			FirstName: "Diego",
			LastName:  "Moreno",
			Email:     "diego@example.com",
			Password:  string(password),
			Role:      users.RoleUser,
		},
	}

	for i := range seedUsers {
		if err := s.db.PostgreSQL.Create(&seedUsers[i]).Error; err != nil {
			return err
		}
		profile := users.UserProfile{
			UserID:             seedUsers[i].ID,
			PhoneNumber:        "5550100100",
			City:               "Mumbai",
			Country:            "India",
			EmailNotifications: true,
		}
		if err := s.db.PostgreSQL.Create(&profile).Error; err != nil {
			return err
		}
	}

	fmt.Printf("Seeded %d users\n", len(seedUsers))
	return nil
}

func (s *Seeder) seedTravelOptions() error {
	now := time.Now().UTC()
	day := 24 * time.Hour

	options := []travel.TravelOption{
		{
			TravelCode:    "FL-101",
			Type:          travel.TypeFlight,
			Source:        "Mumbai",
			Destination:   "Delhi",
			DepartureTime: now.Add(2 * day),
			ArrivalTime:   now.Add(2*day + 2*time.Hour),
			Price:         129.99,
			TotalSeats:    180,
			CompanyName:   "IndiSky",
		},
		{
			TravelCode:    "FL-204",
			Type:          travel.TypeFlight,
			Source:        "Delhi",
			Destination:   "Bengaluru",
			DepartureTime: now.Add(3 * day),
			ArrivalTime:   now.Add(3*day + 150*time.Minute),
			Price:         149.50,
			TotalSeats:    180,
			CompanyName:   "IndiSky",
		},
		{
			TravelCode:    "TR-332",
			Type:          travel.TypeTrain,
			Source:        "Mumbai",
			Destination:   "Pune",
			DepartureTime: now.Add(1 * day),
			ArrivalTime:   now.Add(1*day + 3*time.Hour),
			Price:         18.75,
			TotalSeats:    400,
			CompanyName:   "Deccan Rail",
		},
		{
			TravelCode:    "TR-415",
			Type:          travel.TypeTrain,
			Source:        "Chennai",
			Destination:   "Bengaluru",
			DepartureTime: now.Add(5 * day),
			ArrivalTime:   now.Add(5*day + 5*time.Hour),
			Price:         22.00,
			TotalSeats:    400,
			CompanyName:   "Deccan Rail",
		},
		{
			TravelCode:    "BU-078",
			Type:          travel.TypeBus,
			Source:        "Pune",
			Destination:   "Goa",
			DepartureTime: now.Add(12 * time.Hour),
			ArrivalTime:   now.Add(12*time.Hour + 9*time.Hour),
			Price:         14.25,
			TotalSeats:    45,
			CompanyName:   "Konkan Lines",
		},
		{
			TravelCode:    "BU-112",
			Type:          travel.TypeBus,
			Source:        "Goa",
			Destination:   "Mumbai",
			DepartureTime: now.Add(4 * day),
			ArrivalTime:   now.Add(4*day + 10*time.Hour),
			Price:         16.00,
			TotalSeats:    45,
			CompanyName:   "Konkan Lines",
		},
	}

	for i := range options {
		options[i].Status = travel.StatusActive
		options[i].AvailableSeats = options[i].TotalSeats
		if err := s.db.PostgreSQL.Create(&options[i]).Error; err != nil {
			return err
		}
	}

	fmt.Printf("Seeded %d travel options\n", len(options))
	return nil
}
