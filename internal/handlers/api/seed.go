package api

import (
	"github.com/gofiber/fiber/v3"

	"whatis/internal/config"
	"whatis/internal/db"
	"whatis/internal/models"
)

// SeedHandler loads starter terms into the glossary.
type SeedHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(database *db.DB, cfg *config.Config) *SeedHandler {
	return &SeedHandler{db: database, cfg: cfg}
}

// Seed inserts the seed glossary: the configured YAML file when present,
// the built-in example set otherwise. Existing keys are left untouched, so
// seeding is idempotent.
func (h *SeedHandler) Seed(c fiber.Ctx) error {
	seeds, err := SeedSource(h.cfg)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to load seed glossary")
	}

	inserted, err := h.db.SeedTerms(c.Context(), seeds)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to seed glossary")
	}

	return jsonSuccess(c, models.SeedResponse{Inserted: inserted})
}

// SeedSource resolves where seed terms come from: the configured glossary
// YAML file if it exists, otherwise the built-in examples.
func SeedSource(cfg *config.Config) ([]db.SeedTerm, error) {
	glossary, err := cfg.LoadGlossary()
	if err != nil {
		return nil, err
	}
	if glossary == nil || len(glossary.Terms) == 0 {
		return db.ExampleSeedTerms(), nil
	}

	seeds := make([]db.SeedTerm, 0, len(glossary.Terms))
	for _, term := range glossary.Terms {
		seeds = append(seeds, db.SeedTerm{Name: term.Name, Definition: term.Definition})
	}
	return seeds, nil
}
