package registration

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/muslimtime-api/internal/application/otp"
	"github.com/muslimtime-api/internal/application/user"
	"github.com/muslimtime-api/internal/application/verification"
	"github.com/muslimtime-api/internal/domain"
	"github.com/muslimtime-api/internal/infrastructure/mail"
)

type Service interface {
	// Begin issues a verification code for the email and sends it.
	Begin(ctx context.Context, email string) error
	// Complete verifies the code, creates the account, flags the email as
	// verified and discards the spent code.
	Complete(ctx context.Context, input domain.ConfirmRegistrationRequest) (*domain.User, error)
}

type service struct {
	codes    otp.Service
	accounts user.Service
	flags    verification.Service
	mailer   mail.Sender
}

func NewService(codes otp.Service, accounts user.Service, flags verification.Service, mailer mail.Sender) Service {
	return &service{codes: codes, accounts: accounts, flags: flags, mailer: mailer}
}

func (s *service) Begin(ctx context.Context, email string) error {
	code, err := s.codes.Issue(ctx, email)
	if err != nil {
		return fmt.Errorf("issue verification code: %w", err)
	}
	if err := s.mailer.SendOTP(ctx, email, code); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	return nil
}

func (s *service) Complete(ctx context.Context, input domain.ConfirmRegistrationRequest) (*domain.User, error) {
	// Code errors carry their own user-facing sentinel, pass them through
	// untouched.
	if err := s.codes.Verify(ctx, input.Email, input.Code); err != nil {
		return nil, err
	}

	u, err := s.accounts.Create(ctx, domain.RegisterRequest{
		Email:       input.Email,
		Password:    input.Password,
		DisplayName: input.DisplayName,
	})
	if err != nil {
		return nil, err
	}

	if err := s.flags.MarkVerified(ctx, input.Email, domain.VerificationMethodOTP); err != nil {
		return nil, err
	}

	// The account exists and is verified at this point. A leftover code
	// record is harmless, so a failed cleanup is only logged.
	if err := s.codes.Discard(ctx, input.Email); err != nil {
		slog.Warn("failed to discard spent otp",
			slog.String("email", input.Email), slog.String("error", err.Error()))
	}

	return u, nil
}
