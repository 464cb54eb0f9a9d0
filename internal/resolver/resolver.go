// Package resolver turns a raw query into an exact match, ranked
// suggestions, or a no-match outcome, logging each lookup as a side effect.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"whatis/internal/db"
	"whatis/internal/models"
	"whatis/internal/similarity"
)

var (
	// ErrEmptyQuery is returned for empty or whitespace-only queries.
	// Callers turn it into a help prompt; it is never logged.
	ErrEmptyQuery = errors.New("empty query")

	// ErrStoreUnavailable wraps persistence failures. It is distinct from
	// a term simply not existing; the two must never be conflated.
	ErrStoreUnavailable = errors.New("term store unavailable")
)

// MaxSuggestions caps how many alternatives a resolution carries for
// display. The similarity engine may compute more internally.
const MaxSuggestions = 3

// TermStore is the slice of the term store the resolver needs.
// *db.DB and cache.Store both satisfy it.
type TermStore interface {
	GetTerm(ctx context.Context, rawKey string) (*models.Term, error)
	ListTerms(ctx context.Context) ([]models.Term, error)
}

// QueryLog records lookups for analytics.
type QueryLog interface {
	AppendQueryLog(ctx context.Context, userID, queriedText string, found bool) error
}

// Options configures a Resolver.
type Options struct {
	// Threshold is the minimum similarity score for suggestions.
	// Zero means similarity.DefaultThreshold.
	Threshold int

	// OnLogFailure is called when a query-log append fails. The failure is
	// non-fatal to the resolution itself. May be nil.
	OnLogFailure func(error)
}

// Resolver orchestrates term lookup, fuzzy matching and query logging.
type Resolver struct {
	store       TermStore
	queryLog    QueryLog
	threshold   int
	onLogFail   func(error)
	logFailures atomic.Int64
}

// New creates a Resolver over the given store and query log.
func New(store TermStore, queryLog QueryLog, opts Options) *Resolver {
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = similarity.DefaultThreshold
	}
	return &Resolver{
		store:     store,
		queryLog:  queryLog,
		threshold: threshold,
		onLogFail: opts.OnLogFailure,
	}
}

// Resolve looks up a raw query and returns the outcome. The query is
// normalized for lookup but logged exactly as submitted. A persistence
// failure surfaces as ErrStoreUnavailable and aborts the resolution; it is
// never masked as "not found" and no log entry is fabricated for it.
// A log-append failure is swallowed (the result is still returned) but
// counted and reported through OnLogFailure.
func (r *Resolver) Resolve(ctx context.Context, query, userID string) (*models.Resolution, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	term, err := r.store.GetTerm(ctx, query)
	if err != nil && !errors.Is(err, db.ErrTermNotFound) {
		return nil, fmt.Errorf("%w: looking up %q: %v", ErrStoreUnavailable, query, err)
	}

	found := term != nil
	r.appendLog(ctx, userID, query, found)

	if found {
		return &models.Resolution{Outcome: models.OutcomeExact, Term: term}, nil
	}

	candidates, err := r.store.ListTerms(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing terms: %v", ErrStoreUnavailable, err)
	}

	matches := similarity.Rank(query, candidates, r.threshold)
	if len(matches) == 0 {
		return &models.Resolution{Outcome: models.OutcomeNoMatch}, nil
	}

	if len(matches) > MaxSuggestions {
		matches = matches[:MaxSuggestions]
	}
	suggestions := make([]models.Suggestion, len(matches))
	for i, m := range matches {
		suggestions[i] = models.Suggestion{Term: m.Term, Score: m.Score}
	}

	return &models.Resolution{Outcome: models.OutcomeSuggestions, Suggestions: suggestions}, nil
}

// LogFailureCount returns how many query-log appends have failed since the
// resolver was created.
func (r *Resolver) LogFailureCount() int64 {
	return r.logFailures.Load()
}

func (r *Resolver) appendLog(ctx context.Context, userID, query string, found bool) {
	if err := r.queryLog.AppendQueryLog(ctx, userID, query, found); err != nil {
		r.logFailures.Add(1)
		if r.onLogFail != nil {
			r.onLogFail(err)
		}
	}
}
