package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"

	"whatis/internal/slack"
)

// SlackVerifier authenticates inbound slash-command requests.
type SlackVerifier struct {
	signingSecret string
}

// NewSlackVerifier creates the verification middleware. An empty secret
// means every request is rejected; the server refuses to silently accept
// unsigned traffic.
func NewSlackVerifier(signingSecret string) *SlackVerifier {
	if signingSecret == "" {
		log.Println("Warning: SLACK_SIGNING_SECRET not set; all Slack requests will be rejected")
	}
	return &SlackVerifier{signingSecret: signingSecret}
}

// Verify checks the request signature over the raw body and rejects
// invalid or stale requests before any handler runs.
func (v *SlackVerifier) Verify(c fiber.Ctx) error {
	ok := slack.VerifySignature(
		v.signingSecret,
		c.Body(),
		c.Get(slack.HeaderTimestamp),
		c.Get(slack.HeaderSignature),
		time.Now(),
	)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "invalid request signature",
		})
	}
	return c.Next()
}
