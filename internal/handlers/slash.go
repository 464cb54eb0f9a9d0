package handlers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"whatis/internal/models"
	"whatis/internal/resolver"
	"whatis/internal/slack"
)

// Slack expects an answer within 3 seconds of the slash command. Past
// replyWindow the handler acks the command with an empty 200 and delivers
// the result through response_url instead.
const (
	replyWindow    = 2500 * time.Millisecond
	resolveTimeout = 25 * time.Second
)

type lookupResult struct {
	res *models.Resolution
	err error
}

// SlashHandler handles the /whatis slash command.
type SlashHandler struct {
	resolver *resolver.Resolver
	client   *slack.Client
}

// NewSlashHandler creates a new slash-command handler.
func NewSlashHandler(res *resolver.Resolver) *SlashHandler {
	return &SlashHandler{resolver: res, client: slack.NewClient()}
}

// WhatIs resolves the queried term and answers in the command's channel.
// Signature verification has already happened in middleware. Slack expects
// HTTP 200 with a response envelope even for user-facing failures.
func (h *SlashHandler) WhatIs(c fiber.Ctx) error {
	cmd := slack.ParseCommand(c)

	// The request context dies with the handler, but a delayed response
	// must keep resolving after the ack, so the lookup runs on its own
	// context in either case.
	ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
	done := make(chan lookupResult, 1)
	go func() {
		defer cancel()
		res, err := h.resolver.Resolve(ctx, cmd.Text, cmd.UserID)
		done <- lookupResult{res: res, err: err}
	}()

	if cmd.ResponseURL == "" {
		out := <-done
		return c.JSON(h.buildResponse(cmd, out))
	}

	select {
	case out := <-done:
		return c.JSON(h.buildResponse(cmd, out))
	case <-time.After(replyWindow):
		go h.respondLater(cmd, done)
		return c.SendStatus(fiber.StatusOK)
	}
}

// respondLater waits out a slow lookup and posts the answer to the
// command's response_url.
func (h *SlashHandler) respondLater(cmd slack.Command, done <-chan lookupResult) {
	out := <-done
	resp := h.buildResponse(cmd, out)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := h.client.Respond(ctx, cmd.ResponseURL, resp); err != nil {
		slog.Error("failed to send delayed response", "user_id", cmd.UserID, "error", err)
	}
}

func (h *SlashHandler) buildResponse(cmd slack.Command, out lookupResult) slack.Response {
	if out.err != nil {
		if errors.Is(out.err, resolver.ErrEmptyQuery) {
			return slack.Response{
				ResponseType: slack.ResponseEphemeral,
				Text:         slack.UsageMessage,
			}
		}
		slog.Error("term resolution failed", "user_id", cmd.UserID, "error", out.err)
		return slack.Response{
			ResponseType: slack.ResponseEphemeral,
			Text:         slack.UnavailableMessage,
		}
	}

	return slack.Response{
		ResponseType: slack.ResponseTypeFor(cmd.ChannelID),
		Text:         slack.FormatResolution(out.res),
	}
}
