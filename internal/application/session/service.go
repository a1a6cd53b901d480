package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/muslimtime-api/internal/application/verification"
	"github.com/muslimtime-api/internal/domain"
	"github.com/muslimtime-api/internal/pkg/id"
	pkgtoken "github.com/muslimtime-api/internal/pkg/token"
)

const (
	sessionDuration    = 24 * time.Hour
	rememberMeDuration = 30 * 24 * time.Hour
)

type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"remember_me"`
}

type Service interface {
	Login(ctx context.Context, req LoginRequest) (bearer, refreshToken string, sess *domain.Session, err error)
	Logout(ctx context.Context, sessionID string) error
	// GetCurrent returns the session with its user and verification state
	// hydrated.
	GetCurrent(ctx context.Context, sessionID string) (*domain.Session, error)
	Refresh(ctx context.Context, refreshToken string) (bearer, newRefreshToken string, err error)
}

type sessionStore interface {
	Put(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	Update(ctx context.Context, sessionID string, updates map[string]interface{}) error
	GetByRefreshToken(ctx context.Context, token string) (*domain.Session, error)
	RotateRefreshToken(ctx context.Context, sessionID, newToken string, newExpiry int64) error
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

type tokenSigner interface {
	Sign(userID, email, sessionID string) (string, error)
}

type service struct {
	sessions sessionStore
	users    userStore
	flags    verification.Service
	signer   tokenSigner
}

func NewService(sessions sessionStore, users userStore, flags verification.Service, signer tokenSigner) Service {
	return &service{sessions: sessions, users: users, flags: flags, signer: signer}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (string, string, *domain.Session, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", "", nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
		}
		return "", "", nil, err
	}
	if !u.Enable {
		return "", "", nil, fmt.Errorf("account disabled: %w", domain.ErrForbidden)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return "", "", nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}

	refreshToken, err := pkgtoken.NewRefreshToken()
	if err != nil {
		return "", "", nil, fmt.Errorf("generate refresh token: %w", err)
	}

	dur := sessionDuration
	if req.RememberMe {
		dur = rememberMeDuration
	}

	now := time.Now().UTC()
	sess := &domain.Session{
		SessionID:        id.New(),
		UserID:           u.UserID,
		Enable:           true,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: now.Add(dur).Unix(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.sessions.Put(ctx, sess); err != nil {
		return "", "", nil, err
	}

	if err := s.users.Update(ctx, u.UserID, map[string]interface{}{
		"last_login_at": now.Format(time.RFC3339),
	}); err != nil {
		slog.Warn("failed to record last login",
			slog.String("user_id", u.UserID), slog.String("error", err.Error()))
	}

	bearer, err := s.signer.Sign(u.UserID, u.Email, sess.SessionID)
	if err != nil {
		return "", "", nil, fmt.Errorf("sign access token: %w", err)
	}

	sess.User = u
	sess.EmailVerified = s.emailVerified(ctx, u.Email)
	return bearer, refreshToken, sess, nil
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Update(ctx, sessionID, map[string]interface{}{"enable": false})
}

func (s *service) GetCurrent(ctx context.Context, sessionID string) (*domain.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.Enable {
		return nil, fmt.Errorf("session disabled: %w", domain.ErrUnauthorized)
	}

	u, err := s.users.Get(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	sess.User = u
	sess.EmailVerified = s.emailVerified(ctx, u.Email)
	return sess, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	sess, err := s.sessions.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", "", fmt.Errorf("invalid refresh token: %w", domain.ErrUnauthorized)
		}
		return "", "", err
	}
	if !sess.Enable {
		return "", "", fmt.Errorf("session disabled: %w", domain.ErrUnauthorized)
	}
	if time.Now().Unix() > sess.RefreshExpiresAt {
		return "", "", fmt.Errorf("refresh token expired: %w", domain.ErrUnauthorized)
	}

	u, err := s.users.Get(ctx, sess.UserID)
	if err != nil {
		return "", "", err
	}

	newToken, err := pkgtoken.NewRefreshToken()
	if err != nil {
		return "", "", fmt.Errorf("generate refresh token: %w", err)
	}
	newExpiry := time.Now().Add(sessionDuration).Unix()
	if err := s.sessions.RotateRefreshToken(ctx, sess.SessionID, newToken, newExpiry); err != nil {
		return "", "", err
	}

	bearer, err := s.signer.Sign(u.UserID, u.Email, sess.SessionID)
	if err != nil {
		return "", "", fmt.Errorf("sign access token: %w", err)
	}
	return bearer, newToken, nil
}

// emailVerified never fails a session flow; verification state is advisory
// on the session payload.
func (s *service) emailVerified(ctx context.Context, email string) bool {
	verified, err := s.flags.CheckAccount(ctx, email)
	if err != nil {
		slog.Warn("failed to check email verification",
			slog.String("email", email), slog.String("error", err.Error()))
		return false
	}
	return verified
}
