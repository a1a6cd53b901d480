package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/muslimtime-api/internal/domain"
)

type mockRegistration struct{ mock.Mock }

func (m *mockRegistration) Begin(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}
func (m *mockRegistration) Complete(ctx context.Context, input domain.ConfirmRegistrationRequest) (*domain.User, error) {
	args := m.Called(ctx, input)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestRegistrationBegin(t *testing.T) {
	svc := &mockRegistration{}
	h := NewRegistrationHandler(svc)

	svc.On("Begin", mock.Anything, "a@x.com").Return(nil)

	rr := postJSON(t, h.Begin, map[string]string{
		"email": "a@x.com", "password": "secret123", "display_name": "Aisha",
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["otp_sent"])
}

func TestRegistrationBeginInvalidPayload(t *testing.T) {
	svc := &mockRegistration{}
	h := NewRegistrationHandler(svc)

	for _, body := range []map[string]string{
		{"email": "a@x.com", "password": "short"},
		{"email": "not-an-email", "password": "secret123", "display_name": "A"},
		{},
	} {
		rr := postJSON(t, h.Begin, body)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	}
	svc.AssertNotCalled(t, "Begin")
}

func TestRegistrationConfirmCreated(t *testing.T) {
	svc := &mockRegistration{}
	h := NewRegistrationHandler(svc)

	svc.On("Complete", mock.Anything, mock.Anything).
		Return(&domain.User{UserID: "u1", Email: "a@x.com", DisplayName: "Aisha"}, nil)

	rr := postJSON(t, h.Confirm, map[string]string{
		"email": "a@x.com", "password": "secret123", "display_name": "Aisha", "code": "482913",
	})
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestRegistrationConfirmWrongCode(t *testing.T) {
	svc := &mockRegistration{}
	h := NewRegistrationHandler(svc)

	svc.On("Complete", mock.Anything, mock.Anything).
		Return(nil, domain.ErrCodeMismatch)

	rr := postJSON(t, h.Confirm, map[string]string{
		"email": "a@x.com", "password": "secret123", "display_name": "Aisha", "code": "000000",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegistrationConfirmDuplicateEmail(t *testing.T) {
	svc := &mockRegistration{}
	h := NewRegistrationHandler(svc)

	svc.On("Complete", mock.Anything, mock.Anything).
		Return(nil, domain.ErrConflict)

	rr := postJSON(t, h.Confirm, map[string]string{
		"email": "a@x.com", "password": "secret123", "display_name": "Aisha", "code": "482913",
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestRegistrationConfirmBadCodeFormat(t *testing.T) {
	svc := &mockRegistration{}
	h := NewRegistrationHandler(svc)

	rr := postJSON(t, h.Confirm, map[string]string{
		"email": "a@x.com", "password": "secret123", "display_name": "Aisha", "code": "12ab56",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Complete")
}
