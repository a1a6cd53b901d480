package quran

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/muslimtime-api/internal/domain"
)

const cacheTTL = time.Hour

type Service interface {
	ListSurahs(ctx context.Context) ([]domain.Surah, error)
	GetSurah(ctx context.Context, number int) (*domain.SurahDetail, error)
	GetJuz(ctx context.Context, number int) (*domain.JuzDetail, error)
}

type contentAPI interface {
	ListSurahs(ctx context.Context) ([]domain.Surah, error)
	GetSurah(ctx context.Context, number int) (*domain.SurahDetail, error)
	GetJuz(ctx context.Context, number int) (*domain.JuzDetail, error)
}

type listCache struct {
	mu     sync.Mutex
	value  []domain.Surah
	expiry time.Time
}

type detailCache struct {
	mu      sync.Mutex
	entries map[int]detailEntry
}

type detailEntry struct {
	value  *domain.SurahDetail
	expiry time.Time
}

type service struct {
	api     contentAPI
	list    listCache
	details detailCache
}

func NewService(api contentAPI) Service {
	return &service{api: api, details: detailCache{entries: map[int]detailEntry{}}}
}

// ListSurahs caches the chapter index. The content is immutable, the TTL
// only bounds memory held across deploys of the upstream API.
func (s *service) ListSurahs(ctx context.Context) ([]domain.Surah, error) {
	s.list.mu.Lock()
	defer s.list.mu.Unlock()

	if time.Now().Before(s.list.expiry) {
		return s.list.value, nil
	}

	surahs, err := s.api.ListSurahs(ctx)
	if err != nil {
		return nil, err
	}
	s.list.value = surahs
	s.list.expiry = time.Now().Add(cacheTTL)
	return surahs, nil
}

func (s *service) GetSurah(ctx context.Context, number int) (*domain.SurahDetail, error) {
	if number < 1 || number > 114 {
		return nil, fmt.Errorf("surah number must be 1-114: %w", domain.ErrBadRequest)
	}

	s.details.mu.Lock()
	if e, ok := s.details.entries[number]; ok && time.Now().Before(e.expiry) {
		s.details.mu.Unlock()
		return e.value, nil
	}
	s.details.mu.Unlock()

	detail, err := s.api.GetSurah(ctx, number)
	if err != nil {
		return nil, err
	}

	s.details.mu.Lock()
	s.details.entries[number] = detailEntry{value: detail, expiry: time.Now().Add(cacheTTL)}
	s.details.mu.Unlock()
	return detail, nil
}

func (s *service) GetJuz(ctx context.Context, number int) (*domain.JuzDetail, error) {
	if number < 1 || number > 30 {
		return nil, fmt.Errorf("juz number must be 1-30: %w", domain.ErrBadRequest)
	}
	return s.api.GetJuz(ctx, number)
}
