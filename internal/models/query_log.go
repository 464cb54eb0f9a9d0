package models

import (
	"time"

	"github.com/google/uuid"
)

// QueryLogEntry is one recorded lookup. Entries are append-only; they are
// never mutated or deleted after creation. QueriedText is stored exactly as
// the user submitted it.
type QueryLogEntry struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"user_id"`
	QueriedText string    `json:"queried_text"`
	Found       bool      `json:"found"`
	CreatedAt   time.Time `json:"created_at"`
}

// TermCount is a query-log aggregate row: how often a normalized term
// was looked up.
type TermCount struct {
	Term  string `json:"term"`
	Count int64  `json:"count"`
}

// DailyCount is the number of queries on one UTC calendar day.
type DailyCount struct {
	Date  time.Time `json:"date"`
	Count int64     `json:"count"`
}

// OutcomeCounts holds query totals split by whether a definition was found.
// Used by the metrics collector.
type OutcomeCounts struct {
	Found    int64
	NotFound int64
}
