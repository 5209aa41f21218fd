package travel

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"wayfare/internal/shared/constants"
	"wayfare/pkg/cache"
	"wayfare/pkg/logger"

	"github.com/google/uuid"
)

type Service interface {
	SetCacheService(cacheService cache.Service)

	CreateTravelOption(ctx context.Context, req CreateTravelOptionRequest) (*TravelOptionResponse, error)
	GetTravelOptionByID(ctx context.Context, id uuid.UUID) (*TravelOptionResponse, error)
	UpdateTravelOption(ctx context.Context, id uuid.UUID, req UpdateTravelOptionRequest) (*TravelOptionResponse, error)
	DeleteTravelOption(ctx context.Context, id uuid.UUID) error

	FindAvailable(ctx context.Context, query TravelListQuery) (*PaginatedTravelOptions, error)
	GetUpcoming(ctx context.Context, limit int) ([]TravelOptionResponse, error)
}

type service struct {
	repo         Repository
	cacheService cache.Service
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) CreateTravelOption(ctx context.Context, req CreateTravelOptionRequest) (*TravelOptionResponse, error) {
	if !req.ArrivalTime.After(req.DepartureTime) {
		return nil, errors.New("arrival time must be after departure time")
	}
	if req.DepartureTime.Before(time.Now().UTC()) {
		return nil, errors.New("departure time must be in the future")
	}

	option := &TravelOption{
		TravelCode:     req.TravelCode,
		Type:           TravelType(req.Type),
		CompanyName:    req.CompanyName,
		Source:         req.Source,
		Destination:    req.Destination,
		DepartureTime:  req.DepartureTime,
		ArrivalTime:    req.ArrivalTime,
		Price:          req.Price,
		TotalSeats:     req.TotalSeats,
		AvailableSeats: req.TotalSeats,
		Status:         StatusActive,
		Amenities:      req.Amenities,
	}

	if err := s.repo.Create(ctx, option); err != nil {
		return nil, fmt.Errorf("failed to create travel option: %w", err)
	}

	s.invalidateListCache(ctx)

	resp := option.ToResponse()
	return &resp, nil
}

func (s *service) GetTravelOptionByID(ctx context.Context, id uuid.UUID) (*TravelOptionResponse, error) {
	// Seat counts are live data, so the detail cache stays short-lived and
	// is invalidated on every inventory mutation.
	if s.cacheService != nil {
		var cached TravelOptionResponse
		key := constants.BuildTravelDetailKey(id.String())
		if err := s.cacheService.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	option, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := option.ToResponse()

	if s.cacheService != nil {
		key := constants.BuildTravelDetailKey(id.String())
		if err := s.cacheService.Set(ctx, key, resp, constants.TTL_DYNAMIC_SHORT); err != nil {
			logger.GetDefault().WarnContext(ctx, "Failed to cache travel detail", "error", err)
		}
	}

	return &resp, nil
}

func (s *service) UpdateTravelOption(ctx context.Context, id uuid.UUID, req UpdateTravelOptionRequest) (*TravelOptionResponse, error) {
	option, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		option.CompanyName = *req.CompanyName
	}
	if req.DepartureTime != nil {
		option.DepartureTime = *req.DepartureTime
	}
	if req.ArrivalTime != nil {
		option.ArrivalTime = *req.ArrivalTime
	}
	if !option.ArrivalTime.After(option.DepartureTime) {
		return nil, errors.New("arrival time must be after departure time")
	}
	if req.Price != nil {
		option.Price = *req.Price
	}
	if req.Status != nil {
		next := Status(*req.Status)
		// CANCELLED is terminal for an option; reactivation would resurrect
		// inventory that bookings may have been refunded against.
		if option.Status == StatusCancelled && next != StatusCancelled {
			return nil, errors.New("cancelled travel option cannot be reactivated")
		}
		if next == StatusActive && option.AvailableSeats == 0 {
			next = StatusFull
		}
		option.Status = next
	}
	if req.Amenities != nil {
		option.Amenities = *req.Amenities
	}

	if err := s.repo.Update(ctx, option); err != nil {
		return nil, fmt.Errorf("failed to update travel option: %w", err)
	}

	s.invalidateCache(ctx, id)

	resp := option.ToResponse()
	return &resp, nil
}

func (s *service) DeleteTravelOption(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx, id)
	return nil
}

func (s *service) FindAvailable(ctx context.Context, query TravelListQuery) (*PaginatedTravelOptions, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	cacheKey := constants.BuildTravelListKey(query.Page, query.Limit, query.Type, query.Source, query.Destination)
	cacheable := query.DateFrom == "" && query.DateTo == "" && query.MinPrice == 0 && query.MaxPrice == 0

	if s.cacheService != nil && cacheable {
		var cached PaginatedTravelOptions
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	options, totalCount, err := s.repo.FindAvailable(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list travel options: %w", err)
	}

	responses := make([]TravelOptionResponse, 0, len(options))
	for i := range options {
		responses = append(responses, options[i].ToResponse())
	}

	result := &PaginatedTravelOptions{
		TravelOptions: responses,
		TotalCount:    totalCount,
		Page:          query.Page,
		Limit:         query.Limit,
		TotalPages:    int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}

	if s.cacheService != nil && cacheable {
		if err := s.cacheService.Set(ctx, cacheKey, result, constants.TTL_DYNAMIC_SHORT); err != nil {
			logger.GetDefault().WarnContext(ctx, "Failed to cache travel list", "error", err)
		}
	}

	return result, nil
}

func (s *service) GetUpcoming(ctx context.Context, limit int) ([]TravelOptionResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 6
	}

	options, err := s.repo.GetUpcoming(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming travel options: %w", err)
	}

	responses := make([]TravelOptionResponse, 0, len(options))
	for i := range options {
		responses = append(responses, options[i].ToResponse())
	}
	return responses, nil
}

func (s *service) invalidateCache(ctx context.Context, id uuid.UUID) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.Delete(ctx, constants.BuildTravelDetailKey(id.String())); err != nil {
		logger.GetDefault().WarnContext(ctx, "Failed to invalidate travel detail cache", "error", err)
	}
	s.invalidateListCache(ctx)
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_TRAVEL_ALL); err != nil {
		logger.GetDefault().WarnContext(ctx, "Failed to invalidate travel list cache", "error", err)
	}
}
