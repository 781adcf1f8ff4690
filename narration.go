package litmap

import (
	"context"
	"strings"
)

// Narrator reads text aloud.
type Narrator interface {
	// Speak narrates text and blocks until narration ends or ctx is done.
	Speak(ctx context.Context, text string) error
}

// Narration builds the spoken description of a landmark. The conductor's
// synthesis is preferred over the landmark's own quote and context.
func Narration(l *Landmark, result *ConductorResult) string {
	var parts []string
	if l.Title != "" {
		parts = append(parts, l.Title+".")
	}
	if l.Book != "" {
		parts = append(parts, "From the book "+l.Book+".")
	}
	if l.Era != "" {
		parts = append(parts, "Set in the "+l.Era+".")
	}
	if result != nil && result.Synthesis != "" {
		parts = append(parts, result.Synthesis)
	} else {
		if l.Quote != "" {
			parts = append(parts, `Quote: "`+l.Quote+`"`)
		}
		if l.HistoricalContext != "" {
			parts = append(parts, l.HistoricalContext)
		}
	}
	if l.Mood != "" {
		parts = append(parts, "The mood here is "+strings.ReplaceAll(l.Mood, ",", ", ")+".")
	}
	return strings.Join(parts, " ")
}
