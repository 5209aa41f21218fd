package travel

import "time"

type TravelOptionResponse struct {
	ID             string     `json:"id"`
	TravelCode     string     `json:"travel_code"`
	Type           TravelType `json:"type"`
	CompanyName    string     `json:"company_name"`
	Source         string     `json:"source"`
	Destination    string     `json:"destination"`
	DepartureTime  time.Time  `json:"departure_time"`
	ArrivalTime    time.Time  `json:"arrival_time"`
	Duration       string     `json:"duration"`
	Price          float64    `json:"price"`
	TotalSeats     int        `json:"total_seats"`
	AvailableSeats int        `json:"available_seats"`
	Status         Status     `json:"status"`
	OccupancyRate  float64    `json:"occupancy_rate"`
	Amenities      string     `json:"amenities"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type PaginatedTravelOptions struct {
	TravelOptions []TravelOptionResponse `json:"travel_options"`
	TotalCount    int64                  `json:"total_count"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
	TotalPages    int                    `json:"total_pages"`
}
