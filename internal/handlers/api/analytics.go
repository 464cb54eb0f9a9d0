package api

import (
	"github.com/gofiber/fiber/v3"

	"whatis/internal/db"
	"whatis/internal/models"
)

// Analytics window defaults.
const (
	topTermsLimit   = 10
	dailyWindowDays = 7
)

// AnalyticsHandler serves query-log aggregates.
type AnalyticsHandler struct {
	db *db.DB
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(database *db.DB) *AnalyticsHandler {
	return &AnalyticsHandler{db: database}
}

// Overview returns the usage aggregates for the admin dashboard: top
// queried terms, daily query counts for the trailing week, totals, unique
// users and the success rate as a percentage.
func (h *AnalyticsHandler) Overview(c fiber.Ctx) error {
	ctx := c.Context()

	topTerms, err := h.db.TopTerms(ctx, topTermsLimit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch top terms")
	}
	daily, err := h.db.DailyCounts(ctx, dailyWindowDays)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch daily counts")
	}
	total, err := h.db.TotalQueryCount(ctx)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch query total")
	}
	uniqueUsers, err := h.db.UniqueUserCount(ctx)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch user count")
	}
	successRate, err := h.db.SuccessRate(ctx)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch success rate")
	}

	if topTerms == nil {
		topTerms = []models.TermCount{}
	}
	if daily == nil {
		daily = []models.DailyCount{}
	}

	return jsonSuccess(c, models.AnalyticsResponse{
		TopTerms:     topTerms,
		DailyQueries: daily,
		TotalQueries: total,
		UniqueUsers:  uniqueUsers,
		SuccessRate:  successRate * 100,
	})
}
