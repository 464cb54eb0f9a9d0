package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// Health confirms the service is up.
func Health(c fiber.Ctx) error {
	return c.SendString("WhatIs Slack bot is running!")
}
