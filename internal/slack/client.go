package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client sends delayed responses to a slash command's response_url.
type Client struct {
	http *http.Client
}

// NewClient creates a Slack response client with a request timeout.
func NewClient() *Client {
	return &Client{
		http: &http.Client{Timeout: 5 * time.Second},
	}
}

// Respond posts a response envelope to the given response_url. Slack
// accepts these for up to 30 minutes after the original command.
func (c *Client) Respond(ctx context.Context, responseURL string, resp Response) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, responseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("slack response_url returned HTTP %s", res.Status)
	}
	return nil
}
