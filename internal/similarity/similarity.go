// Package similarity scores how close two strings are and ranks glossary
// candidates against a query. It is pure: no I/O, no shared state.
package similarity

import (
	"sort"

	"whatis/internal/models"
	"whatis/internal/validation"
)

// DefaultThreshold is the minimum score for a candidate to count as "close".
const DefaultThreshold = 80

// Match pairs a candidate term with its similarity score.
type Match struct {
	Term  models.Term
	Score int
}

// Ratio returns a similarity score in [0,100] based on normalized edit
// distance: 100 for identical strings, near 0 for completely dissimilar
// ones. The metric is symmetric and decreases as edit distance grows.
// Comparison is byte-exact; callers normalize case beforehand.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}

	ra := []rune(a)
	rb := []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 100
	}

	dist := levenshtein(ra, rb)
	return int(float64(longest-dist)/float64(longest)*100 + 0.5)
}

// Rank scores each candidate's name against the query and returns those at
// or above the threshold, sorted by score descending with ties broken by
// normalized name ascending. Both sides are normalized before scoring, so
// ranking is case-insensitive. The result is deterministic for a given
// input.
func Rank(query string, candidates []models.Term, threshold int) []Match {
	normalized := validation.NormalizeTerm(query)

	var matches []Match
	for _, candidate := range candidates {
		score := Ratio(normalized, validation.NormalizeTerm(candidate.Name))
		if score >= threshold {
			matches = append(matches, Match{Term: candidate, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return validation.NormalizeTerm(matches[i].Term.Name) < validation.NormalizeTerm(matches[j].Term.Name)
	})

	return matches
}

// levenshtein computes the edit distance between two rune slices using two
// rows instead of the full matrix.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
