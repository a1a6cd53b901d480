package prayer

import (
	"context"
	"fmt"

	"github.com/muslimtime-api/internal/domain"
)

type Service interface {
	ByCity(ctx context.Context, city, country string) (*domain.PrayerTimes, error)
	ByCoordinates(ctx context.Context, lat, lng float64) (*domain.PrayerTimes, error)
}

type timesAPI interface {
	ByCity(ctx context.Context, city, country string) (*domain.PrayerTimes, error)
	ByCoordinates(ctx context.Context, lat, lng float64) (*domain.PrayerTimes, error)
}

type service struct {
	api timesAPI
}

func NewService(api timesAPI) Service {
	return &service{api: api}
}

func (s *service) ByCity(ctx context.Context, city, country string) (*domain.PrayerTimes, error) {
	if city == "" || country == "" {
		return nil, fmt.Errorf("city and country are required: %w", domain.ErrBadRequest)
	}
	return s.api.ByCity(ctx, city, country)
}

func (s *service) ByCoordinates(ctx context.Context, lat, lng float64) (*domain.PrayerTimes, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("coordinates out of range: %w", domain.ErrBadRequest)
	}
	return s.api.ByCoordinates(ctx, lat, lng)
}
