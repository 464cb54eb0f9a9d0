package db

import (
	"context"
	"time"

	"whatis/internal/models"
)

// AppendQueryLog records one lookup. The queried text is stored exactly as
// submitted; the timestamp is assigned by the database at append time.
// Entries are append-only and never mutated.
func (d *DB) AppendQueryLog(ctx context.Context, userID, queriedText string, found bool) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO query_logs (user_id, queried_text, found)
		VALUES ($1, $2, $3)
	`, userID, queriedText, found)
	return err
}

// TopTerms returns the most-queried terms, grouped by normalized text,
// ranked by count descending with ties broken by term ascending.
func (d *DB) TopTerms(ctx context.Context, limit int) ([]models.TermCount, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := d.Pool.Query(ctx, `
		SELECT LOWER(TRIM(queried_text)) AS term, COUNT(*) AS count
		FROM query_logs
		GROUP BY term
		ORDER BY count DESC, term ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.TermCount
	for rows.Next() {
		var tc models.TermCount
		if err := rows.Scan(&tc.Term, &tc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, tc)
	}
	return counts, rows.Err()
}

// DailyCounts returns query counts grouped by UTC calendar day for the
// trailing window, in ascending date order. Days with no queries are
// omitted.
func (d *DB) DailyCounts(ctx context.Context, windowDays int) ([]models.DailyCount, error) {
	if windowDays <= 0 {
		windowDays = 7
	}
	rows, err := d.Pool.Query(ctx, `
		SELECT (created_at AT TIME ZONE 'UTC')::date AS day, COUNT(*) AS count
		FROM query_logs
		WHERE created_at >= NOW() - make_interval(days => $1)
		GROUP BY day
		ORDER BY day ASC
	`, windowDays)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.DailyCount
	for rows.Next() {
		var dc models.DailyCount
		var day time.Time
		if err := rows.Scan(&day, &dc.Count); err != nil {
			return nil, err
		}
		dc.Date = day.UTC()
		counts = append(counts, dc)
	}
	return counts, rows.Err()
}

// TotalQueryCount returns the total number of logged queries.
func (d *DB) TotalQueryCount(ctx context.Context) (int64, error) {
	var count int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM query_logs`).Scan(&count)
	return count, err
}

// UniqueUserCount returns the number of distinct users that have queried.
func (d *DB) UniqueUserCount(ctx context.Context) (int64, error) {
	var count int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(DISTINCT user_id) FROM query_logs`).Scan(&count)
	return count, err
}

// SuccessRate returns the fraction of queries that found a term, in [0,1].
// An empty log yields 0, not an error.
func (d *DB) SuccessRate(ctx context.Context) (float64, error) {
	var rate float64
	err := d.Pool.QueryRow(ctx, `
		SELECT COALESCE(AVG(CASE WHEN found THEN 1.0 ELSE 0.0 END), 0)
		FROM query_logs
	`).Scan(&rate)
	return rate, err
}

// QueryOutcomeCounts returns totals split by outcome, for metrics export.
func (d *DB) QueryOutcomeCounts(ctx context.Context) (models.OutcomeCounts, error) {
	var counts models.OutcomeCounts
	err := d.Pool.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE found),
			COUNT(*) FILTER (WHERE NOT found)
		FROM query_logs
	`).Scan(&counts.Found, &counts.NotFound)
	return counts, err
}
