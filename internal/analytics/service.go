package analytics

import (
	"context"

	"wayfare/internal/shared/constants"
	"wayfare/internal/travel"
	"wayfare/pkg/cache"
)

const featuredTravelCount = 6

type Service interface {
	SetCacheService(cacheService cache.Service)

	GetHomeOverview(ctx context.Context) (*HomeOverview, error)
	GetBookingOverview(ctx context.Context) (*BookingOverview, error)
	GetDailyBookingStats(ctx context.Context, days int) ([]DailyBookingStats, error)
}

type service struct {
	repo         Repository
	cacheService cache.Service
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) GetHomeOverview(ctx context.Context) (*HomeOverview, error) {
	if s.cacheService != nil {
		var cached HomeOverview
		err := s.cacheService.GetOrSet(ctx, constants.CACHE_KEY_STATS_HOME, constants.TTL_STATS, func() (interface{}, error) {
			return s.buildHomeOverview(ctx)
		}, &cached)
		if err == nil {
			return &cached, nil
		}
	}
	return s.buildHomeOverview(ctx)
}

func (s *service) buildHomeOverview(ctx context.Context) (*HomeOverview, error) {
	stats, err := s.repo.GetHomeStats(ctx)
	if err != nil {
		return nil, err
	}

	options, err := s.repo.GetFeaturedTravels(ctx, featuredTravelCount)
	if err != nil {
		return nil, err
	}

	featured := make([]travel.TravelOptionResponse, len(options))
	for i := range options {
		featured[i] = options[i].ToResponse()
	}

	return &HomeOverview{
		FeaturedTravels: featured,
		Stats:           *stats,
	}, nil
}

func (s *service) GetBookingOverview(ctx context.Context) (*BookingOverview, error) {
	return s.repo.GetBookingOverview(ctx)
}

func (s *service) GetDailyBookingStats(ctx context.Context, days int) ([]DailyBookingStats, error) {
	if days <= 0 || days > 90 {
		days = 30
	}
	return s.repo.GetDailyBookingStats(ctx, days)
}
