package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"whatis/internal/db"
	"whatis/internal/models"
	"whatis/internal/resolver"
	"whatis/internal/slack"
	"whatis/internal/validation"
)

type stubStore struct {
	terms map[string]models.Term
	err   error
	delay time.Duration
}

func (s *stubStore) GetTerm(_ context.Context, rawKey string) (*models.Term, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.err != nil {
		return nil, s.err
	}
	term, ok := s.terms[validation.NormalizeTerm(rawKey)]
	if !ok {
		return nil, db.ErrTermNotFound
	}
	return &term, nil
}

func (s *stubStore) ListTerms(_ context.Context) ([]models.Term, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Term
	for _, t := range s.terms {
		out = append(out, t)
	}
	return out, nil
}

type stubLog struct{}

func (stubLog) AppendQueryLog(context.Context, string, string, bool) error { return nil }

func slashApp(store *stubStore) *fiber.App {
	app := fiber.New()
	res := resolver.New(store, stubLog{}, resolver.Options{})
	app.Post("/slack/whatis", NewSlashHandler(res).WhatIs)
	return app
}

func postCommand(t *testing.T, app *fiber.App, form url.Values) slack.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/slack/whatis", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	var out slack.Response
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", body, err)
	}
	return out
}

func TestWhatIs_ExactMatch(t *testing.T) {
	app := slashApp(&stubStore{terms: map[string]models.Term{
		"fyi": {Key: "fyi", Name: "FYI", Definition: "For Your Information"},
	}})

	out := postCommand(t, app, url.Values{
		"text":       {"FYI"},
		"user_id":    {"U1"},
		"channel_id": {"C024BE91L"},
	})

	if out.ResponseType != slack.ResponseInChannel {
		t.Errorf("response_type = %q, want in_channel for a public channel", out.ResponseType)
	}
	if out.Text != "*FYI*: For Your Information" {
		t.Errorf("text = %q, want formatted definition", out.Text)
	}
}

func TestWhatIs_DirectMessageIsEphemeral(t *testing.T) {
	app := slashApp(&stubStore{terms: map[string]models.Term{
		"fyi": {Key: "fyi", Name: "FYI", Definition: "For Your Information"},
	}})

	out := postCommand(t, app, url.Values{
		"text":       {"FYI"},
		"user_id":    {"U1"},
		"channel_id": {"D024BE91L"},
	})

	if out.ResponseType != slack.ResponseEphemeral {
		t.Errorf("response_type = %q, want ephemeral in a DM", out.ResponseType)
	}
}

func TestWhatIs_EmptyQueryGetsUsage(t *testing.T) {
	app := slashApp(&stubStore{terms: map[string]models.Term{}})

	out := postCommand(t, app, url.Values{
		"text":       {"   "},
		"user_id":    {"U1"},
		"channel_id": {"C024BE91L"},
	})

	if out.ResponseType != slack.ResponseEphemeral {
		t.Errorf("response_type = %q, want ephemeral for usage help", out.ResponseType)
	}
	if out.Text != slack.UsageMessage {
		t.Errorf("text = %q, want usage message", out.Text)
	}
}

func TestWhatIs_NotFound(t *testing.T) {
	app := slashApp(&stubStore{terms: map[string]models.Term{
		"docker": {Key: "docker", Name: "Docker", Definition: "Containers."},
	}})

	out := postCommand(t, app, url.Values{
		"text":       {"quaternion"},
		"user_id":    {"U1"},
		"channel_id": {"C024BE91L"},
	})

	if out.Text != slack.NotFoundMessage {
		t.Errorf("text = %q, want not-found message", out.Text)
	}
}

func TestWhatIs_StoreFailureIsGenericApology(t *testing.T) {
	app := slashApp(&stubStore{err: errors.New("connection refused")})

	out := postCommand(t, app, url.Values{
		"text":       {"FYI"},
		"user_id":    {"U1"},
		"channel_id": {"C024BE91L"},
	})

	if out.ResponseType != slack.ResponseEphemeral {
		t.Errorf("response_type = %q, want ephemeral for a failure", out.ResponseType)
	}
	if out.Text != slack.UnavailableMessage {
		t.Errorf("text = %q, want unavailable message, never raw error detail", out.Text)
	}
	if strings.Contains(out.Text, "connection refused") {
		t.Errorf("text leaks internal error: %q", out.Text)
	}
}

func TestWhatIs_SlowLookupAnswersViaResponseURL(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping slow-path test in short mode")
	}

	delivered := make(chan slack.Response, 1)
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var resp slack.Response
		if err := json.NewDecoder(r.Body).Decode(&resp); err != nil {
			t.Errorf("failed to decode delayed response: %v", err)
		}
		delivered <- resp
	}))
	defer hook.Close()

	app := slashApp(&stubStore{
		terms: map[string]models.Term{
			"fyi": {Key: "fyi", Name: "FYI", Definition: "For Your Information"},
		},
		delay: replyWindow + 500*time.Millisecond,
	})

	form := url.Values{
		"text":         {"FYI"},
		"user_id":      {"U1"},
		"channel_id":   {"C024BE91L"},
		"response_url": {hook.URL},
	}
	req, err := http.NewRequest(http.MethodPost, "/slack/whatis", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, fiber.TestConfig{Timeout: 10 * time.Second})
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	// The in-band reply is a bare ack; the answer follows out of band.
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("ack status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if strings.Contains(string(body), "FYI") {
		t.Errorf("ack body %q should not carry the answer", body)
	}

	select {
	case out := <-delivered:
		if out.Text != "*FYI*: For Your Information" {
			t.Errorf("delayed text = %q, want formatted definition", out.Text)
		}
		if out.ResponseType != slack.ResponseInChannel {
			t.Errorf("delayed response_type = %q, want in_channel", out.ResponseType)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("delayed response never arrived")
	}
}
