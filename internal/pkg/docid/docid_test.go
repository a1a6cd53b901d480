package docid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOTP(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"a@x.com", "otp_a_x_com"},
		{"User.Name+tag@mail.co", "otp_User_Name_tag_mail_co"},
		{"plain123", "otp_plain123"},
		{"ümlaut@x.de", "otp__mlaut_x_de"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OTP(tt.email), "email %q", tt.email)
	}
}

func TestVerification(t *testing.T) {
	assert.Equal(t, "verification_a_x_com", Verification("a@x.com"))
	assert.Equal(t, "verification_a_b_c_d", Verification("a-b_c@d"))
}
