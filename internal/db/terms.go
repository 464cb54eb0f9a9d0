package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"whatis/internal/models"
	"whatis/internal/validation"
)

// termColumns is the standard column list for term queries.
const termColumns = `id, key, name, definition, created_at, updated_at`

// scanTerm scans a row into a Term struct.
func scanTerm(row pgx.Row) (*models.Term, error) {
	var term models.Term
	err := row.Scan(
		&term.ID,
		&term.Key,
		&term.Name,
		&term.Definition,
		&term.CreatedAt,
		&term.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTermNotFound
	}
	if err != nil {
		return nil, err
	}
	return &term, nil
}

// GetTerm retrieves a term by its raw key. The key is normalized before
// lookup, so "API", "api" and " Api " all resolve the same entry.
// Absence is reported as ErrTermNotFound, not a scan failure.
func (d *DB) GetTerm(ctx context.Context, rawKey string) (*models.Term, error) {
	key := validation.NormalizeTerm(rawKey)
	query := `SELECT ` + termColumns + ` FROM terms WHERE key = $1`
	return scanTerm(d.Pool.QueryRow(ctx, query, key))
}

// CreateTerm persists a new term. The identity key is derived from the name.
// Returns ErrDuplicateTerm if a term with the same normalized key already
// exists; the unique index makes concurrent creates resolve to exactly one
// winner.
func (d *DB) CreateTerm(ctx context.Context, term *models.Term) error {
	term.Key = validation.NormalizeTerm(term.Name)

	query := `
		INSERT INTO terms (key, name, definition)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := d.Pool.QueryRow(ctx, query, term.Key, term.Name, term.Definition).
		Scan(&term.ID, &term.CreatedAt, &term.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateTerm
		}
		return err
	}

	return nil
}

// UpdateTerm replaces the definition of an existing term and refreshes
// updated_at. Returns ErrTermNotFound if no term exists for the key;
// nothing is created in that case.
func (d *DB) UpdateTerm(ctx context.Context, rawKey, definition string) (*models.Term, error) {
	key := validation.NormalizeTerm(rawKey)
	query := `
		UPDATE terms
		SET definition = $1, updated_at = NOW()
		WHERE key = $2
		RETURNING ` + termColumns
	return scanTerm(d.Pool.QueryRow(ctx, query, definition, key))
}

// DeleteTerm removes a term by its raw key. Returns ErrTermNotFound if no
// term exists for the normalized key.
func (d *DB) DeleteTerm(ctx context.Context, rawKey string) error {
	key := validation.NormalizeTerm(rawKey)
	result, err := d.Pool.Exec(ctx, `DELETE FROM terms WHERE key = $1`, key)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrTermNotFound
	}
	return nil
}

// ListTerms retrieves all terms ordered by normalized key ascending.
func (d *DB) ListTerms(ctx context.Context) ([]models.Term, error) {
	query := `SELECT ` + termColumns + ` FROM terms ORDER BY key ASC`
	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []models.Term
	for rows.Next() {
		var term models.Term
		if err := rows.Scan(
			&term.ID,
			&term.Key,
			&term.Name,
			&term.Definition,
			&term.CreatedAt,
			&term.UpdatedAt,
		); err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, rows.Err()
}

// CountTerms returns the number of glossary entries. Always computed from
// the terms table rather than a cached counter.
func (d *DB) CountTerms(ctx context.Context) (int64, error) {
	var count int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM terms`).Scan(&count)
	return count, err
}

// SeedTerm is one entry for bulk seeding.
type SeedTerm struct {
	Name       string
	Definition string
}

// SeedTerms inserts seed entries, skipping any whose key already exists.
// Returns the number of rows actually inserted.
func (d *DB) SeedTerms(ctx context.Context, seeds []SeedTerm) (int, error) {
	query := `
		INSERT INTO terms (key, name, definition)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO NOTHING
	`

	inserted := 0
	for _, seed := range seeds {
		key := validation.NormalizeTerm(seed.Name)
		if key == "" {
			continue
		}
		result, err := d.Pool.Exec(ctx, query, key, seed.Name, seed.Definition)
		if err != nil {
			return inserted, err
		}
		inserted += int(result.RowsAffected())
	}
	return inserted, nil
}
