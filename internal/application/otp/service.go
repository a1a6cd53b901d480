package otp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/muslimtime-api/internal/domain"
	"github.com/muslimtime-api/internal/pkg/otpcode"
)

const (
	codeTTL     = 10 * time.Minute
	maxAttempts = 3
)

type Service interface {
	// Issue generates a fresh code for the email, overwriting any previous
	// code, and returns it for delivery.
	Issue(ctx context.Context, email string) (string, error)
	// Verify checks a submitted code against the stored record.
	Verify(ctx context.Context, email, code string) error
	// Discard removes the stored code for the email.
	Discard(ctx context.Context, email string) error
}

type codeStore interface {
	Put(ctx context.Context, rec *domain.OTPRecord) error
	Get(ctx context.Context, email string) (*domain.OTPRecord, error)
	MergeUpdate(ctx context.Context, email string, updates map[string]interface{}) error
	Delete(ctx context.Context, email string) error
}

type service struct {
	store codeStore
	now   func() time.Time
}

func NewService(store codeStore) Service {
	return &service{store: store, now: time.Now}
}

func (s *service) Issue(ctx context.Context, email string) (string, error) {
	code, err := otpcode.Generate()
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	rec := &domain.OTPRecord{
		Email:     email,
		Code:      code,
		ExpiresAt: s.now().Add(codeTTL).Unix(),
		Attempts:  0,
		Verified:  false,
	}
	if err := s.store.Put(ctx, rec); err != nil {
		return "", fmt.Errorf("store code: %w", err)
	}
	return code, nil
}

// Verify walks the record through its states in a fixed order: missing,
// already verified, expired or corrupt, attempts exhausted, then the code
// comparison itself. Terminal states delete the record; success only flips
// the verified flag so the caller can finish its flow before discarding.
func (s *service) Verify(ctx context.Context, email, code string) error {
	rec, err := s.store.Get(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrOTPNotFound
		}
		return fmt.Errorf("load code: %w", err)
	}

	if rec.Verified {
		return domain.ErrAlreadyVerified
	}

	if rec.ExpiresAt == 0 || s.now().Unix() > rec.ExpiresAt {
		s.deleteQuietly(ctx, email, "expired")
		return domain.ErrOTPExpired
	}

	if rec.Attempts >= maxAttempts {
		s.deleteQuietly(ctx, email, "attempts exhausted")
		return domain.ErrTooManyAttempts
	}

	if rec.Code != code {
		attempts := rec.Attempts + 1
		if attempts >= maxAttempts {
			s.deleteQuietly(ctx, email, "attempts exhausted")
			return domain.ErrTooManyAttempts
		}
		if err := s.store.MergeUpdate(ctx, email, map[string]interface{}{
			"attempts": attempts,
		}); err != nil {
			return fmt.Errorf("record attempt: %w", err)
		}
		return fmt.Errorf("%w, %d attempts remaining", domain.ErrCodeMismatch, maxAttempts-attempts)
	}

	if err := s.store.MergeUpdate(ctx, email, map[string]interface{}{
		"verified": true,
	}); err != nil {
		return fmt.Errorf("mark code verified: %w", err)
	}
	return nil
}

func (s *service) Discard(ctx context.Context, email string) error {
	return s.store.Delete(ctx, email)
}

// deleteQuietly removes a record on a terminal path. The caller's error is
// the one that matters, so a failed delete is only logged.
func (s *service) deleteQuietly(ctx context.Context, email, reason string) {
	if err := s.store.Delete(ctx, email); err != nil {
		slog.Warn("failed to delete otp record",
			slog.String("reason", reason), slog.String("error", err.Error()))
	}
}
