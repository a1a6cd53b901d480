package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendOTP(ctx context.Context, to, code string) error {
	return m.Called(ctx, to, code).Error(0)
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

func postJSON(t *testing.T, h http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(b))
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestSendOTP(t *testing.T) {
	mailer := &mockMailer{}
	h := NewOTPHandler(mailer, &mockFlags{})

	mailer.On("SendOTP", mock.Anything, "a@x.com", "482913").Return(nil)

	rr := postJSON(t, h.Send, map[string]string{"email": "a@x.com", "code": "482913"})
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp SuccessEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestSendOTPMissingFields(t *testing.T) {
	mailer := &mockMailer{}
	h := NewOTPHandler(mailer, &mockFlags{})

	for _, body := range []map[string]string{
		{"email": "a@x.com"},
		{"code": "482913"},
		{"email": "not-an-email", "code": "482913"},
		{"email": "a@x.com", "code": "12345"},
	} {
		rr := postJSON(t, h.Send, body)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	}
	mailer.AssertNotCalled(t, "SendOTP")
}

func TestMarkEmailVerified(t *testing.T) {
	flags := &mockFlags{}
	h := NewOTPHandler(&mockMailer{}, flags)

	flags.On("MarkVerified", mock.Anything, "a@x.com", "otp").Return(nil)

	rr := postJSON(t, h.MarkEmailVerified, map[string]string{"email": "a@x.com"})
	assert.Equal(t, http.StatusOK, rr.Code)
	flags.AssertExpectations(t)
}

func TestMarkEmailVerifiedMissingEmail(t *testing.T) {
	flags := &mockFlags{}
	h := NewOTPHandler(&mockMailer{}, flags)

	rr := postJSON(t, h.MarkEmailVerified, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	flags.AssertNotCalled(t, "MarkVerified")
}
