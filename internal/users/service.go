package users

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Service interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*UserResponse, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, req UpdateUserRequest) (*UserResponse, error)

	// CreateProfile is the explicit second step of registration. Creating the
	// user row does not create a profile.
	CreateProfile(ctx context.Context, userID uuid.UUID, req CreateProfileRequest) (*ProfileResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*ProfileResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetUser(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *service) UpdateUser(ctx context.Context, userID uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *service) CreateProfile(ctx context.Context, userID uuid.UUID, req CreateProfileRequest) (*ProfileResponse, error) {
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetProfileByUserID(ctx, userID); err == nil {
		return nil, ErrProfileExists
	} else if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}

	profile := &UserProfile{
		UserID:             userID,
		PhoneNumber:        req.PhoneNumber,
		Gender:             Gender(req.Gender),
		Address:            req.Address,
		City:               req.City,
		State:              req.State,
		Country:            req.Country,
		Pincode:            req.Pincode,
		EmailNotifications: true,
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err == nil {
			profile.DateOfBirth = &dob
		}
	}
	if req.EmailNotifications != nil {
		profile.EmailNotifications = *req.EmailNotifications
	}
	if req.SMSNotifications != nil {
		profile.SMSNotifications = *req.SMSNotifications
	}

	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}

	resp := profile.ToResponse()
	return &resp, nil
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error) {
	profile, err := s.repo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := profile.ToResponse()
	if total, active, err := s.repo.GetBookingStats(ctx, userID); err == nil {
		resp.TotalBookings = total
		resp.ActiveBookings = active
	}
	return &resp, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*ProfileResponse, error) {
	profile, err := s.repo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.PhoneNumber != nil {
		profile.PhoneNumber = *req.PhoneNumber
	}
	if req.Gender != nil {
		profile.Gender = Gender(*req.Gender)
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.State != nil {
		profile.State = *req.State
	}
	if req.Country != nil {
		profile.Country = *req.Country
	}
	if req.Pincode != nil {
		profile.Pincode = *req.Pincode
	}
	if req.EmailNotifications != nil {
		profile.EmailNotifications = *req.EmailNotifications
	}
	if req.SMSNotifications != nil {
		profile.SMSNotifications = *req.SMSNotifications
	}
	if req.DateOfBirth != nil {
		if *req.DateOfBirth == "" {
			profile.DateOfBirth = nil
		} else if dob, err := time.Parse("2006-01-02", *req.DateOfBirth); err == nil {
			profile.DateOfBirth = &dob
		}
	}

	if err := s.repo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}

	resp := profile.ToResponse()
	return &resp, nil
}
