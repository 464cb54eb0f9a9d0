// Package slack holds the Slack-facing pieces: request signature
// verification, slash-command parsing, response formatting and the delayed
// response client.
package slack

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Request header names set by Slack.
const (
	HeaderTimestamp = "X-Slack-Request-Timestamp"
	HeaderSignature = "X-Slack-Signature"
)

// Response visibility types.
const (
	ResponseEphemeral = "ephemeral"
	ResponseInChannel = "in_channel"
)

// Command is a parsed slash-command payload.
type Command struct {
	Text        string
	UserID      string
	ChannelID   string
	ResponseURL string
}

// ParseCommand extracts the slash-command fields from a form-encoded
// request body.
func ParseCommand(c fiber.Ctx) Command {
	return Command{
		Text:        strings.TrimSpace(c.FormValue("text")),
		UserID:      c.FormValue("user_id"),
		ChannelID:   c.FormValue("channel_id"),
		ResponseURL: c.FormValue("response_url"),
	}
}

// Response is the JSON envelope Slack expects back from a slash command.
type Response struct {
	ResponseType string `json:"response_type"`
	Text         string `json:"text"`
}

// IsDirectMessage reports whether a channel ID names a DM conversation.
// Slack DM channel IDs start with 'D'.
func IsDirectMessage(channelID string) bool {
	return strings.HasPrefix(channelID, "D")
}

// ResponseTypeFor picks the visibility for a lookup answer: public in
// channels, private in direct messages.
func ResponseTypeFor(channelID string) string {
	if IsDirectMessage(channelID) {
		return ResponseEphemeral
	}
	return ResponseInChannel
}
