package user

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/muslimtime-api/internal/domain"
	"github.com/muslimtime-api/internal/pkg/id"
)

const countCacheTTL = 5 * time.Minute

type Service interface {
	Create(ctx context.Context, input domain.RegisterRequest) (*domain.User, error)
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input domain.UpdateProfileRequest) (*domain.User, error)
	// Count returns the total registered users, cached for a few minutes.
	Count(ctx context.Context) (int, error)
}

type userStore interface {
	Put(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
	Count(ctx context.Context) (int, error)
}

type countCache struct {
	mu     sync.Mutex
	value  int
	expiry time.Time
}

type service struct {
	repo  userStore
	cache countCache
}

func NewService(repo userStore) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, input domain.RegisterRequest) (*domain.User, error) {
	if _, err := s.repo.GetByEmail(ctx, input.Email); err == nil {
		return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	u := &domain.User{
		UserID:       id.New(),
		Email:        input.Email,
		DisplayName:  input.DisplayName,
		PasswordHash: string(hash),
		Enable:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Put(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.Get(ctx, userID)
}

func (s *service) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *service) UpdateProfile(ctx context.Context, userID string, input domain.UpdateProfileRequest) (*domain.User, error) {
	updates := map[string]interface{}{}
	if input.DisplayName != nil {
		updates["display_name"] = *input.DisplayName
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, userID, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, userID)
}

func (s *service) Count(ctx context.Context) (int, error) {
	s.cache.mu.Lock()
	defer s.cache.mu.Unlock()

	if time.Now().Before(s.cache.expiry) {
		return s.cache.value, nil
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		// Serve the stale value if there is one rather than failing a
		// cosmetic counter.
		if !s.cache.expiry.IsZero() {
			return s.cache.value, nil
		}
		return 0, err
	}

	s.cache.value = total
	s.cache.expiry = time.Now().Add(countCacheTTL)
	return total, nil
}
