package security

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

const resetTokenBytes = 20

// NewResetToken returns a single-use password reset token and its expiry.
func NewResetToken(now time.Time, ttl time.Duration) (string, time.Time, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", time.Time{}, fmt.Errorf("generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), now.Add(ttl), nil
}
