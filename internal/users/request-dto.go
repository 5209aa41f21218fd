package users

type CreateProfileRequest struct {
	PhoneNumber        string `json:"phone_number" binding:"omitempty,min=7,max=15"`
	DateOfBirth        string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	Gender             string `json:"gender" binding:"omitempty,oneof=M F O"`
	Address            string `json:"address" binding:"omitempty,max=500"`
	City               string `json:"city" binding:"omitempty,max=50"`
	State              string `json:"state" binding:"omitempty,max=50"`
	Country            string `json:"country" binding:"omitempty,max=50"`
	Pincode            string `json:"pincode" binding:"omitempty,max=10"`
	EmailNotifications *bool  `json:"email_notifications"`
	SMSNotifications   *bool  `json:"sms_notifications"`
}

type UpdateProfileRequest struct {
	PhoneNumber        *string `json:"phone_number" binding:"omitempty,min=7,max=15"`
	DateOfBirth        *string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	Gender             *string `json:"gender" binding:"omitempty,oneof=M F O"`
	Address            *string `json:"address" binding:"omitempty,max=500"`
	City               *string `json:"city" binding:"omitempty,max=50"`
	State              *string `json:"state" binding:"omitempty,max=50"`
	Country            *string `json:"country" binding:"omitempty,max=50"`
	Pincode            *string `json:"pincode" binding:"omitempty,max=10"`
	EmailNotifications *bool   `json:"email_notifications"`
	SMSNotifications   *bool   `json:"sms_notifications"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=2,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,min=2,max=100"`
}
