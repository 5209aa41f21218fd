package users

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func IsValidRole(role string) bool {
	switch role {
	case string(RoleUser), string(RoleAdmin):
		return true
	default:
		return false
	}
}

type User struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	FirstName string    `json:"first_name" gorm:"not null"`
	LastName  string    `json:"last_name" gorm:"not null"`
	Password  string    `json:"-" gorm:"not null"` // hide in json
	Role      Role      `json:"role" gorm:"not null;default:'USER'"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

// UserProfile holds the traveller details that are not needed for
// authentication. It is created as an explicit registration step, not as a
// side effect of inserting the user row.
type UserProfile struct {
	ID                 uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	UserID             uuid.UUID  `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	PhoneNumber        string     `json:"phone_number" gorm:"size:15"`
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty"`
	Gender             Gender     `json:"gender,omitempty" gorm:"size:1"`
	Address            string     `json:"address" gorm:"type:text"`
	City               string     `json:"city" gorm:"size:50"`
	State              string     `json:"state" gorm:"size:50"`
	Country            string     `json:"country" gorm:"size:50;default:'India'"`
	Pincode            string     `json:"pincode" gorm:"size:10"`
	EmailNotifications bool       `json:"email_notifications" gorm:"default:true"`
	SMSNotifications   bool       `json:"sms_notifications" gorm:"default:false"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// FullAddress joins the non-empty address parts with commas.
func (p *UserProfile) FullAddress() string {
	parts := make([]string, 0, 5)
	for _, part := range []string{p.Address, p.City, p.State, p.Country, p.Pincode} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
