package verification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/muslimtime-api/internal/domain"
)

type Service interface {
	// MarkVerified records that the email passed verification.
	MarkVerified(ctx context.Context, email, method string) error
	// Check reports whether the email has a verification flag. A missing
	// flag is simply false.
	Check(ctx context.Context, email string) (bool, error)
	// CheckAccount is the authenticated-session variant of Check. Accounts
	// created before flags existed have none, so a missing flag is healed
	// in place and reported as verified.
	CheckAccount(ctx context.Context, email string) (bool, error)
}

type flagStore interface {
	Put(ctx context.Context, f *domain.VerificationFlag) error
	Get(ctx context.Context, email string) (*domain.VerificationFlag, error)
}

type service struct {
	store flagStore
	now   func() time.Time
}

func NewService(store flagStore) Service {
	return &service{store: store, now: time.Now}
}

func (s *service) MarkVerified(ctx context.Context, email, method string) error {
	flag := &domain.VerificationFlag{
		Email:              email,
		IsEmailVerified:    true,
		VerifiedAt:         s.now().UTC(),
		VerificationMethod: method,
	}
	if err := s.store.Put(ctx, flag); err != nil {
		return fmt.Errorf("store verification flag: %w", err)
	}
	return nil
}

func (s *service) Check(ctx context.Context, email string) (bool, error) {
	flag, err := s.store.Get(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return flag.IsEmailVerified, nil
}

func (s *service) CheckAccount(ctx context.Context, email string) (bool, error) {
	flag, err := s.store.Get(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			if err := s.MarkVerified(ctx, email, domain.VerificationMethodOTP); err != nil {
				return false, err
			}
			return true, nil
		}
		return false, err
	}
	return flag.IsEmailVerified, nil
}
