package users

import (
	"time"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"user_id"`
	PhoneNumber        string     `json:"phone_number,omitempty"`
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty"`
	Gender             string     `json:"gender,omitempty"`
	Address            string     `json:"address,omitempty"`
	City               string     `json:"city,omitempty"`
	State              string     `json:"state,omitempty"`
	Country            string     `json:"country,omitempty"`
	Pincode            string     `json:"pincode,omitempty"`
	FullAddress        string     `json:"full_address,omitempty"`
	EmailNotifications bool       `json:"email_notifications"`
	SMSNotifications   bool       `json:"sms_notifications"`
	TotalBookings      int64      `json:"total_bookings"`
	ActiveBookings     int64      `json:"active_bookings"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (p *UserProfile) ToResponse() ProfileResponse {
	return ProfileResponse{
		ID:                 p.ID,
		UserID:             p.UserID,
		PhoneNumber:        p.PhoneNumber,
		DateOfBirth:        p.DateOfBirth,
		Gender:             string(p.Gender),
		Address:            p.Address,
		City:               p.City,
		State:              p.State,
		Country:            p.Country,
		Pincode:            p.Pincode,
		FullAddress:        p.FullAddress(),
		EmailNotifications: p.EmailNotifications,
		SMSNotifications:   p.SMSNotifications,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
