package security

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResetToken(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	token, expiry, err := NewResetToken(now, time.Hour)
	require.NoError(t, err)

	raw, err := hex.DecodeString(token)
	require.NoError(t, err, "token must be hex")
	assert.Len(t, raw, 20)
	assert.Equal(t, now.Add(time.Hour), expiry)
}

func TestNewResetTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 32; i++ {
		token, _, err := NewResetToken(time.Now(), time.Hour)
		require.NoError(t, err)
		require.False(t, seen[token], "duplicate reset token")
		seen[token] = true
	}
}
