package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/litmap"
)

// printer renders domain values for the terminal. Colors are dropped when
// the writer is not a terminal.
type printer struct {
	w io.Writer
	r *lipgloss.Renderer
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, r: lipgloss.NewRenderer(w)}
}

func (p *printer) eraStyle(era string) lipgloss.Style {
	return p.r.NewStyle().Foreground(lipgloss.Color(litmap.LookupEra(era).Color)).Bold(true)
}

func (p *printer) dim(s string) string {
	return p.r.NewStyle().Faint(true).Render(s)
}

func (p *printer) heading(s string) string {
	return p.r.NewStyle().Bold(true).Underline(true).Render(s)
}

// era renders an era tag such as "1920s · Harlem Renaissance".
func (p *printer) era(era string) string {
	meta := litmap.LookupEra(era)
	label := era
	if meta.Label != "" && meta.Label != era {
		label += " · " + meta.Label
	}
	return p.eraStyle(era).Render(label)
}

func (p *printer) landmarkLine(l *litmap.Landmark) {
	year := ""
	if l.Year != 0 {
		year = fmt.Sprintf(" (%d)", l.Year)
	}
	fmt.Fprintf(p.w, "%s  %s%s  %s  %s\n", l.ID, l.Title, year, p.era(l.Era), p.dim(l.Book))
}

// landmark prints the popup for a landmark. Archivist details replace the
// landmark's own quote and context when present.
func (p *printer) landmark(l *litmap.Landmark, archivist *litmap.ArchivistRecord) {
	fmt.Fprintf(p.w, "%s\n", p.eraStyle(l.Era).Render(l.Title))
	fmt.Fprintf(p.w, "%s  %s\n", p.era(l.Era), p.dim(fmt.Sprintf("[%.4f, %.4f]", l.Coordinates.Lng, l.Coordinates.Lat)))

	book, quote, context := l.Book, l.Quote, l.HistoricalContext
	if archivist != nil {
		book = firstNonEmpty(archivist.Book, book)
		quote = firstNonEmpty(archivist.Quote, quote)
		context = firstNonEmpty(archivist.HistoricalContext, context)
	}
	if book != "" {
		fmt.Fprintf(p.w, "Book: %s\n", book)
	}
	if quote != "" {
		fmt.Fprintf(p.w, "%q\n", quote)
	}
	if context != "" {
		fmt.Fprintln(p.w, context)
	}
	if archivist != nil && archivist.AIInsight != "" {
		fmt.Fprintf(p.w, "Insight: %s\n", archivist.AIInsight)
	}
	if l.Mood != "" {
		fmt.Fprintf(p.w, "Mood: %s\n", strings.ReplaceAll(l.Mood, ",", ", "))
	}
}

func (p *printer) conductor(result *litmap.ConductorResult, thoughts bool) {
	if result.Synthesis != "" {
		fmt.Fprintf(p.w, "\n%s\n%s\n", p.heading("Synthesis"), result.Synthesis)
	}
	if result.Linguist != nil {
		p.linguist(result.Linguist)
	}
	if result.Stylist != nil {
		p.stylist(result.Stylist)
	}
	if len(result.Timeline) > 0 {
		fmt.Fprintf(p.w, "\n%s %s\n", p.heading("Timeline"), p.dim(fmt.Sprintf("%dms", result.TotalMS)))
		for _, step := range result.Timeline {
			line := fmt.Sprintf("  %-16s %-22s %-8s %5dms", step.Agent, step.Tool, step.Status, step.ElapsedMS)
			if step.Error != "" {
				line += "  " + step.Error
			}
			fmt.Fprintln(p.w, line)
		}
	}
	if thoughts && len(result.ChainOfThought) > 0 {
		fmt.Fprintf(p.w, "\n%s\n", p.heading("Chain of thought"))
		for _, t := range result.ChainOfThought {
			fmt.Fprintf(p.w, "  [%s] %s: %s\n", t.Agent, t.Step, t.Detail)
		}
	}
}

func (p *printer) linguist(rec *litmap.LinguistRecord) {
	fmt.Fprintf(p.w, "\n%s %s\n", p.heading("Dialect"), p.era(rec.Era))
	if rec.DialectNotes != "" {
		fmt.Fprintln(p.w, rec.DialectNotes)
	}
	for _, s := range rec.Slang {
		fmt.Fprintf(p.w, "  %s: %s\n", s.Term, s.Meaning)
	}
	if rec.AIBlurb != "" {
		fmt.Fprintln(p.w, rec.AIBlurb)
	}
}

func (p *printer) stylist(rec *litmap.StylistRecord) {
	fmt.Fprintf(p.w, "\n%s %s\n", p.heading("Style"), p.era(rec.Era))
	swatch := func(c string) string {
		if c == "" {
			return ""
		}
		return p.r.NewStyle().Foreground(lipgloss.Color(c)).Render("■ " + c)
	}
	fmt.Fprintf(p.w, "  %s  background %s  accent %s\n", rec.Label, swatch(rec.BackgroundColor), swatch(rec.AccentColor))
	if rec.FontSuggestion != "" {
		fmt.Fprintf(p.w, "  font: %s\n", rec.FontSuggestion)
	}
	if rec.AISuggestion != "" {
		fmt.Fprintln(p.w, rec.AISuggestion)
	}
}

func (p *printer) book(b *litmap.Book) {
	var details []string
	if len(b.Authors) > 0 {
		details = append(details, strings.Join(b.Authors, ", "))
	}
	if b.FirstPublishYear != 0 {
		details = append(details, fmt.Sprint(b.FirstPublishYear))
	}
	if b.EditionCount > 0 {
		details = append(details, fmt.Sprintf("%d editions", b.EditionCount))
	}
	fmt.Fprintf(p.w, "%s  %s\n", b.Title, p.dim(strings.Join(details, " · ")))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
