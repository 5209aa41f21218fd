package users

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) CreateProfile(ctx context.Context, profile *UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *mockUserRepository) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*UserProfile), args.Error(1)
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, profile *UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *mockUserRepository) GetBookingStats(ctx context.Context, userID uuid.UUID) (int64, int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func testUser(id uuid.UUID) *User {
	return &User{
		ID:        id,
		Email:     "asha@example.com",
		FirstName: "Asha",
		LastName:  "Patel",
		Role:      RoleUser,
	}
}

func TestCreateProfile(t *testing.T) {
	t.Run("creates when none exists", func(t *testing.T) {
		userID := uuid.New()
		repo := new(mockUserRepository)
		repo.On("GetByID", mock.Anything, userID).Return(testUser(userID), nil)
		repo.On("GetProfileByUserID", mock.Anything, userID).Return(nil, ErrProfileNotFound)
		repo.On("CreateProfile", mock.Anything, mock.MatchedBy(func(p *UserProfile) bool {
			return p.UserID == userID && p.PhoneNumber == "+919812345678"
		})).Return(nil)

		svc := NewService(repo)
		resp, err := svc.CreateProfile(context.Background(), userID, CreateProfileRequest{
			PhoneNumber: "+919812345678",
			DateOfBirth: "1994-06-21",
			Address:     "42 Marine Drive, Mumbai",
		})

		require.NoError(t, err)
		assert.Equal(t, "+919812345678", resp.PhoneNumber)
		repo.AssertExpectations(t)
	})

	t.Run("rejects a second profile", func(t *testing.T) {
		userID := uuid.New()
		repo := new(mockUserRepository)
		repo.On("GetByID", mock.Anything, userID).Return(testUser(userID), nil)
		repo.On("GetProfileByUserID", mock.Anything, userID).
			Return(&UserProfile{UserID: userID}, nil)

		svc := NewService(repo)
		_, err := svc.CreateProfile(context.Background(), userID, CreateProfileRequest{})

		assert.ErrorIs(t, err, ErrProfileExists)
		repo.AssertNotCalled(t, "CreateProfile", mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		userID := uuid.New()
		repo := new(mockUserRepository)
		repo.On("GetByID", mock.Anything, userID).Return(nil, ErrNotFound)

		svc := NewService(repo)
		_, err := svc.CreateProfile(context.Background(), userID, CreateProfileRequest{})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetProfileIncludesBookingStats(t *testing.T) {
	userID := uuid.New()

	repo := new(mockUserRepository)
	repo.On("GetProfileByUserID", mock.Anything, userID).Return(&UserProfile{
		UserID:  userID,
		City:    "Mumbai",
		Country: "India",
	}, nil)
	repo.On("GetBookingStats", mock.Anything, userID).Return(int64(7), int64(2), nil)

	svc := NewService(repo)
	resp, err := svc.GetProfile(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.TotalBookings)
	assert.Equal(t, int64(2), resp.ActiveBookings)
	assert.Equal(t, "Mumbai, India", resp.FullAddress)
}

func TestUpdateProfilePatchesOnlyProvidedFields(t *testing.T) {
	userID := uuid.New()
	dob := time.Date(1994, 6, 21, 0, 0, 0, 0, time.UTC)

	repo := new(mockUserRepository)
	repo.On("GetProfileByUserID", mock.Anything, userID).Return(&UserProfile{
		UserID:      userID,
		PhoneNumber: "+919812345678",
		Address:     "42 Marine Drive, Mumbai",
		DateOfBirth: &dob,
	}, nil)
	repo.On("UpdateProfile", mock.Anything, mock.Anything).Return(nil)

	newPhone := "+919899999999"
	svc := NewService(repo)
	resp, err := svc.UpdateProfile(context.Background(), userID, UpdateProfileRequest{
		PhoneNumber: &newPhone,
	})

	require.NoError(t, err)
	assert.Equal(t, newPhone, resp.PhoneNumber)
	assert.Equal(t, "42 Marine Drive, Mumbai", resp.Address)
}
