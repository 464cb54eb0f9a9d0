package slack

import (
	"strings"

	"whatis/internal/models"
)

// Canned user-facing messages.
const (
	UsageMessage       = "Please provide a term to look up. Usage: `/whatis [term]`"
	NotFoundMessage    = "Sorry, I don't have a definition for that term."
	UnavailableMessage = "Sorry, something went wrong looking that up. Please try again later."
)

// FormatResolution renders a resolution as a Slack message.
func FormatResolution(res *models.Resolution) string {
	switch res.Outcome {
	case models.OutcomeExact:
		return formatTerm(res.Term)
	case models.OutcomeSuggestions:
		var b strings.Builder
		b.WriteString("Sorry, I don't have a definition for that exact term. Did you mean:\n\n")
		for _, s := range res.Suggestions {
			b.WriteString("• ")
			b.WriteString(formatTerm(&s.Term))
			b.WriteString("\n\n")
		}
		return b.String()
	default:
		return NotFoundMessage
	}
}

func formatTerm(term *models.Term) string {
	return "*" + term.Name + "*: " + term.Definition
}
