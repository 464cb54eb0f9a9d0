package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"whatis/internal/cache"
	"whatis/internal/db"
	"whatis/internal/models"
	"whatis/internal/validation"
)

// TermHandler handles glossary CRUD operations via JSON API.
type TermHandler struct {
	db    *db.DB
	cache *cache.Store // nil when caching is disabled
}

// NewTermHandler creates a new API term handler. The cache may be nil.
func NewTermHandler(database *db.DB, termCache *cache.Store) *TermHandler {
	return &TermHandler{db: database, cache: termCache}
}

// List returns all glossary terms ordered by key.
func (h *TermHandler) List(c fiber.Ctx) error {
	terms, err := h.db.ListTerms(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch terms")
	}
	if terms == nil {
		terms = []models.Term{}
	}
	return jsonSuccess(c, terms)
}

// Get returns a single term by its key.
func (h *TermHandler) Get(c fiber.Ctx) error {
	term, err := h.db.GetTerm(c.Context(), c.Params("term"))
	if err != nil {
		if errors.Is(err, db.ErrTermNotFound) {
			return jsonError(c, fiber.StatusNotFound, "term not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch term")
	}
	return jsonSuccess(c, term)
}

// Create adds a new term. Rejected with 409 if the normalized key exists.
func (h *TermHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name       string `json:"name"`
		Definition string `json:"definition"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if valid, msg := validation.ValidateTermName(body.Name); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}
	if valid, msg := validation.ValidateDefinition(body.Definition); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	term := &models.Term{
		Name:       body.Name,
		Definition: body.Definition,
	}
	if err := h.db.CreateTerm(c.Context(), term); err != nil {
		if errors.Is(err, db.ErrDuplicateTerm) {
			return jsonError(c, fiber.StatusConflict, "term already exists")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to create term")
	}

	h.invalidate(term.Key)
	return jsonCreated(c, term)
}

// Update replaces the definition of an existing term.
func (h *TermHandler) Update(c fiber.Ctx) error {
	var body struct {
		Definition string `json:"definition"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if valid, msg := validation.ValidateDefinition(body.Definition); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	term, err := h.db.UpdateTerm(c.Context(), c.Params("term"), body.Definition)
	if err != nil {
		if errors.Is(err, db.ErrTermNotFound) {
			return jsonError(c, fiber.StatusNotFound, "term not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to update term")
	}

	h.invalidate(term.Key)
	return jsonSuccess(c, term)
}

// Delete removes a term by its key.
func (h *TermHandler) Delete(c fiber.Ctx) error {
	key := c.Params("term")
	if err := h.db.DeleteTerm(c.Context(), key); err != nil {
		if errors.Is(err, db.ErrTermNotFound) {
			return jsonError(c, fiber.StatusNotFound, "term not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete term")
	}

	h.invalidate(key)
	return jsonSuccess(c, fiber.Map{"deleted": validation.NormalizeTerm(key)})
}

func (h *TermHandler) invalidate(key string) {
	if h.cache != nil {
		h.cache.Invalidate(key)
	}
}
