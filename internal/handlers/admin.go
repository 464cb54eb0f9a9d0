package handlers

import (
	"github.com/gofiber/fiber/v3"

	"whatis/internal/db"
)

// AdminHandler renders the admin dashboard.
type AdminHandler struct {
	db *db.DB
}

// NewAdminHandler creates a new admin page handler.
func NewAdminHandler(database *db.DB) *AdminHandler {
	return &AdminHandler{db: database}
}

// Dashboard shows glossary size and usage analytics. The term and
// analytics data itself is fetched by the page from the JSON API.
func (h *AdminHandler) Dashboard(c fiber.Ctx) error {
	termCount, err := h.db.CountTerms(c.Context())
	if err != nil {
		return err
	}
	totalQueries, err := h.db.TotalQueryCount(c.Context())
	if err != nil {
		return err
	}

	return c.Render("admin", fiber.Map{
		"Title":        "WhatIs Admin",
		"TermCount":    termCount,
		"TotalQueries": totalQueries,
	})
}
