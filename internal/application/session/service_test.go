package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/muslimtime-api/internal/domain"
)

// --- mocks ---

type mockSessionStore struct{ mock.Mock }

func (m *mockSessionStore) Put(ctx context.Context, s *domain.Session) error {
	return m.Called(ctx, s).Error(0)
}
func (m *mockSessionStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if s, _ := args.Get(0).(*domain.Session); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSessionStore) Update(ctx context.Context, sessionID string, updates map[string]interface{}) error {
	return m.Called(ctx, sessionID, updates).Error(0)
}
func (m *mockSessionStore) GetByRefreshToken(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if s, _ := args.Get(0).(*domain.Session); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSessionStore) RotateRefreshToken(ctx context.Context, sessionID, newToken string, newExpiry int64) error {
	return m.Called(ctx, sessionID, newToken, newExpiry).Error(0)
}

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Get(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) Update(ctx context.Context, userID string, updates map[string]interface{}) error {
	return m.Called(ctx, userID, updates).Error(0)
}

type mockFlags struct{ mock.Mock }

func (m *mockFlags) MarkVerified(ctx context.Context, email, method string) error {
	return m.Called(ctx, email, method).Error(0)
}
func (m *mockFlags) Check(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *mockFlags) CheckAccount(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockSigner struct{ mock.Mock }

func (m *mockSigner) Sign(userID, email, sessionID string) (string, error) {
	args := m.Called(userID, email, sessionID)
	return args.String(0), args.Error(1)
}

func hashOf(password string) string {
	h, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(h)
}

func enabledUser() *domain.User {
	return &domain.User{
		UserID:       "u1",
		Email:        "a@x.com",
		PasswordHash: hashOf("secret123"),
		Enable:       true,
	}
}

// --- Login ---

func TestLoginHappyPath(t *testing.T) {
	sessions, users, flags, signer := &mockSessionStore{}, &mockUserStore{}, &mockFlags{}, &mockSigner{}
	svc := NewService(sessions, users, flags, signer)

	users.On("GetByEmail", mock.Anything, "a@x.com").Return(enabledUser(), nil)
	sessions.On("Put", mock.Anything, mock.Anything).Return(nil)
	users.On("Update", mock.Anything, "u1", mock.Anything).Return(nil)
	signer.On("Sign", "u1", "a@x.com", mock.Anything).Return("bearer-token", nil)
	flags.On("CheckAccount", mock.Anything, "a@x.com").Return(true, nil)

	bearer, refresh, sess, err := svc.Login(context.Background(), LoginRequest{
		Email: "a@x.com", Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer-token", bearer)
	assert.NotEmpty(t, refresh)
	assert.True(t, sess.EmailVerified)
	assert.Equal(t, "u1", sess.User.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	sessions, users := &mockSessionStore{}, &mockUserStore{}
	svc := NewService(sessions, users, &mockFlags{}, &mockSigner{})

	users.On("GetByEmail", mock.Anything, "a@x.com").Return(enabledUser(), nil)

	_, _, _, err := svc.Login(context.Background(), LoginRequest{
		Email: "a@x.com", Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	sessions.AssertNotCalled(t, "Put")
}

func TestLoginUnknownEmailLooksLikeBadCredentials(t *testing.T) {
	users := &mockUserStore{}
	svc := NewService(&mockSessionStore{}, users, &mockFlags{}, &mockSigner{})

	users.On("GetByEmail", mock.Anything, "nobody@x.com").Return(nil, domain.ErrNotFound)

	_, _, _, err := svc.Login(context.Background(), LoginRequest{
		Email: "nobody@x.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginDisabledAccount(t *testing.T) {
	users := &mockUserStore{}
	svc := NewService(&mockSessionStore{}, users, &mockFlags{}, &mockSigner{})

	u := enabledUser()
	u.Enable = false
	users.On("GetByEmail", mock.Anything, "a@x.com").Return(u, nil)

	_, _, _, err := svc.Login(context.Background(), LoginRequest{
		Email: "a@x.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLoginRememberMeExtendsRefreshExpiry(t *testing.T) {
	sessions, users, flags, signer := &mockSessionStore{}, &mockUserStore{}, &mockFlags{}, &mockSigner{}
	svc := NewService(sessions, users, flags, signer)

	users.On("GetByEmail", mock.Anything, "a@x.com").Return(enabledUser(), nil)
	var saved *domain.Session
	sessions.On("Put", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*domain.Session)
	}).Return(nil)
	users.On("Update", mock.Anything, "u1", mock.Anything).Return(nil)
	signer.On("Sign", "u1", "a@x.com", mock.Anything).Return("bearer-token", nil)
	flags.On("CheckAccount", mock.Anything, "a@x.com").Return(true, nil)

	_, _, _, err := svc.Login(context.Background(), LoginRequest{
		Email: "a@x.com", Password: "secret123", RememberMe: true,
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	minExpiry := time.Now().Add(29 * 24 * time.Hour).Unix()
	assert.Greater(t, saved.RefreshExpiresAt, minExpiry)
}

func TestLoginVerificationCheckFailureIsNotFatal(t *testing.T) {
	sessions, users, flags, signer := &mockSessionStore{}, &mockUserStore{}, &mockFlags{}, &mockSigner{}
	svc := NewService(sessions, users, flags, signer)

	users.On("GetByEmail", mock.Anything, "a@x.com").Return(enabledUser(), nil)
	sessions.On("Put", mock.Anything, mock.Anything).Return(nil)
	users.On("Update", mock.Anything, "u1", mock.Anything).Return(nil)
	signer.On("Sign", "u1", "a@x.com", mock.Anything).Return("bearer-token", nil)
	flags.On("CheckAccount", mock.Anything, "a@x.com").Return(false, assert.AnError)

	_, _, sess, err := svc.Login(context.Background(), LoginRequest{
		Email: "a@x.com", Password: "secret123",
	})
	require.NoError(t, err)
	assert.False(t, sess.EmailVerified)
}

// --- GetCurrent / Logout / Refresh ---

func TestGetCurrentHydratesUserAndVerification(t *testing.T) {
	sessions, users, flags := &mockSessionStore{}, &mockUserStore{}, &mockFlags{}
	svc := NewService(sessions, users, flags, &mockSigner{})

	sessions.On("Get", mock.Anything, "s1").
		Return(&domain.Session{SessionID: "s1", UserID: "u1", Enable: true}, nil)
	users.On("Get", mock.Anything, "u1").Return(enabledUser(), nil)
	flags.On("CheckAccount", mock.Anything, "a@x.com").Return(true, nil)

	sess, err := svc.GetCurrent(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "u1", sess.User.UserID)
	assert.True(t, sess.EmailVerified)
}

func TestGetCurrentDisabledSession(t *testing.T) {
	sessions := &mockSessionStore{}
	svc := NewService(sessions, &mockUserStore{}, &mockFlags{}, &mockSigner{})

	sessions.On("Get", mock.Anything, "s1").
		Return(&domain.Session{SessionID: "s1", Enable: false}, nil)

	_, err := svc.GetCurrent(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogoutDisablesSession(t *testing.T) {
	sessions := &mockSessionStore{}
	svc := NewService(sessions, &mockUserStore{}, &mockFlags{}, &mockSigner{})

	sessions.On("Update", mock.Anything, "s1",
		map[string]interface{}{"enable": false}).Return(nil)

	require.NoError(t, svc.Logout(context.Background(), "s1"))
	sessions.AssertExpectations(t)
}

func TestRefreshRotatesToken(t *testing.T) {
	sessions, users, signer := &mockSessionStore{}, &mockUserStore{}, &mockSigner{}
	svc := NewService(sessions, users, &mockFlags{}, signer)

	sessions.On("GetByRefreshToken", mock.Anything, "old-token").
		Return(&domain.Session{
			SessionID:        "s1",
			UserID:           "u1",
			Enable:           true,
			RefreshExpiresAt: time.Now().Add(time.Hour).Unix(),
		}, nil)
	users.On("Get", mock.Anything, "u1").Return(enabledUser(), nil)
	sessions.On("RotateRefreshToken", mock.Anything, "s1", mock.Anything, mock.Anything).Return(nil)
	signer.On("Sign", "u1", "a@x.com", "s1").Return("new-bearer", nil)

	bearer, newToken, err := svc.Refresh(context.Background(), "old-token")
	require.NoError(t, err)
	assert.Equal(t, "new-bearer", bearer)
	assert.NotEmpty(t, newToken)
	assert.NotEqual(t, "old-token", newToken)
}

func TestRefreshExpiredToken(t *testing.T) {
	sessions := &mockSessionStore{}
	svc := NewService(sessions, &mockUserStore{}, &mockFlags{}, &mockSigner{})

	sessions.On("GetByRefreshToken", mock.Anything, "old-token").
		Return(&domain.Session{
			SessionID:        "s1",
			Enable:           true,
			RefreshExpiresAt: time.Now().Add(-time.Minute).Unix(),
		}, nil)

	_, _, err := svc.Refresh(context.Background(), "old-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	sessions.AssertNotCalled(t, "RotateRefreshToken")
}

func TestRefreshDisabledSession(t *testing.T) {
	sessions := &mockSessionStore{}
	svc := NewService(sessions, &mockUserStore{}, &mockFlags{}, &mockSigner{})

	// Logged-out sessions keep their refresh token in the table but must
	// not be able to rotate it back into a bearer.
	sessions.On("GetByRefreshToken", mock.Anything, "old-token").
		Return(&domain.Session{
			SessionID:        "s1",
			UserID:           "u1",
			Enable:           false,
			RefreshExpiresAt: time.Now().Add(time.Hour).Unix(),
		}, nil)

	_, _, err := svc.Refresh(context.Background(), "old-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	sessions.AssertNotCalled(t, "RotateRefreshToken")
}

func TestRefreshUnknownToken(t *testing.T) {
	sessions := &mockSessionStore{}
	svc := NewService(sessions, &mockUserStore{}, &mockFlags{}, &mockSigner{})

	sessions.On("GetByRefreshToken", mock.Anything, "bogus").Return(nil, domain.ErrNotFound)

	_, _, err := svc.Refresh(context.Background(), "bogus")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
