package validation

import (
	"strings"
	"unicode/utf8"
)

// MaxTermLength caps how long a glossary term name may be.
const MaxTermLength = 100

// MaxDefinitionLength caps the definition free text.
const MaxDefinitionLength = 2000

// NormalizeTerm trims and lowercases a term so lookups are case-insensitive.
// The normalized form is the term's identity key.
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// ValidateTermName checks that a term name is usable as a glossary key.
func ValidateTermName(name string) (bool, string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false, "term is required"
	}
	if utf8.RuneCountInString(trimmed) > MaxTermLength {
		return false, "term is too long"
	}
	if strings.ContainsAny(trimmed, "\n\r\t") {
		return false, "term must not contain line breaks or tabs"
	}
	return true, ""
}

// ValidateDefinition checks that a definition is present and within bounds.
func ValidateDefinition(definition string) (bool, string) {
	if strings.TrimSpace(definition) == "" {
		return false, "definition is required"
	}
	if utf8.RuneCountInString(definition) > MaxDefinitionLength {
		return false, "definition is too long"
	}
	return true, ""
}
