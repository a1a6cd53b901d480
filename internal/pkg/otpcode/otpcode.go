// Package otpcode generates one-time passcodes for email verification.
package otpcode

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
)

// Generate returns a fresh 6-digit numeric code, uniformly distributed over
// [100000, 999999]. The range makes the code structurally 6 digits; no string
// padding is involved.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate otp code: %w", err)
	}
	return strconv.FormatInt(100000+n.Int64(), 10), nil
}
