package models

// Resolution outcome constants
const (
	OutcomeExact       = "exact"
	OutcomeSuggestions = "suggestions"
	OutcomeNoMatch     = "no_match"
)

// Suggestion pairs a candidate term with its similarity score (0-100).
type Suggestion struct {
	Term  Term `json:"term"`
	Score int  `json:"score"`
}

// Resolution is the result of resolving one query. Exactly one of the
// following holds: Outcome is OutcomeExact and Term is set; Outcome is
// OutcomeSuggestions and Suggestions is non-empty, sorted by score
// descending with ties broken by normalized name ascending; or Outcome is
// OutcomeNoMatch. Resolutions are transient and never persisted.
type Resolution struct {
	Outcome     string       `json:"outcome"`
	Term        *Term        `json:"term,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}
