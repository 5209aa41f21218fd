package travel

import "time"

type CreateTravelOptionRequest struct {
	TravelCode    string    `json:"travel_code" binding:"required,min=3,max=20"`
	Type          string    `json:"type" binding:"required,oneof=FLIGHT TRAIN BUS"`
	CompanyName   string    `json:"company_name" binding:"required,min=2,max=100"`
	Source        string    `json:"source" binding:"required,min=2,max=100"`
	Destination   string    `json:"destination" binding:"required,min=2,max=100"`
	DepartureTime time.Time `json:"departure_time" binding:"required"`
	ArrivalTime   time.Time `json:"arrival_time" binding:"required"`
	Price         float64   `json:"price" binding:"min=0"`
	TotalSeats    int       `json:"total_seats" binding:"required,min=1,max=500"`
	Amenities     string    `json:"amenities" binding:"max=2000"`
}

type UpdateTravelOptionRequest struct {
	CompanyName   *string    `json:"company_name" binding:"omitempty,min=2,max=100"`
	DepartureTime *time.Time `json:"departure_time"`
	ArrivalTime   *time.Time `json:"arrival_time"`
	Price         *float64   `json:"price" binding:"omitempty,min=0"`
	Status        *string    `json:"status" binding:"omitempty,oneof=ACTIVE CANCELLED"`
	Amenities     *string    `json:"amenities" binding:"omitempty,max=2000"`
}

type TravelListQuery struct {
	Page        int     `form:"page" binding:"omitempty,min=1"`
	Limit       int     `form:"limit" binding:"omitempty,min=1,max=100"`
	Type        string  `form:"type" binding:"omitempty,oneof=FLIGHT TRAIN BUS"`
	Source      string  `form:"source"`
	Destination string  `form:"destination"`
	DateFrom    string  `form:"date_from"`
	DateTo      string  `form:"date_to"`
	MinPrice    float64 `form:"min_price" binding:"omitempty,min=0"`
	MaxPrice    float64 `form:"max_price" binding:"omitempty,min=0"`
}
