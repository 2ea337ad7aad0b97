package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestSessionTokenRoundtrip(t *testing.T) {
	token, err := IssueSessionToken(testSecret, "user-123", 10*24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseSessionToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestParseSessionTokenWrongSecret(t *testing.T) {
	token, err := IssueSessionToken(testSecret, "user-123", time.Hour)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "another-secret")
	require.Error(t, err)
}

func TestParseSessionTokenMalformed(t *testing.T) {
	_, err := ParseSessionToken("not.a.jwt", testSecret)
	require.Error(t, err)
}

func TestParseSessionTokenExpired(t *testing.T) {
	token, err := IssueSessionToken(testSecret, "user-123", -time.Minute)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, testSecret)
	require.Error(t, err)
}
