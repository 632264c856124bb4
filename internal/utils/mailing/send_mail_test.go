package mailing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage_Headers(t *testing.T) {
	cfg := MailConfig{
		SMTPSender: "FreshTrack",
		SMTPEmail:  "noreply@freshtrack.app",
	}

	m := buildMessage(cfg, "user@example.com", "Verify your FreshTrack account", "<p>hi</p>")

	assert.Equal(t, []string{"user@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Verify your FreshTrack account"}, m.GetHeader("Subject"))

	from := m.GetHeader("From")
	require.Len(t, from, 1)
	assert.Contains(t, from[0], "FreshTrack")
	assert.Contains(t, from[0], "noreply@freshtrack.app")
}
