package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResetMessage(t *testing.T) {
	subject, body := ResetMessage("https://shop.example.com", "abc123")

	assert.NotEmpty(t, subject)
	assert.Contains(t, body, `"https://shop.example.com/reset?resetToken=abc123"`)
	assert.Contains(t, body, "<a href=")
}
