// Package gemini answers questions about places with Google Gemini, for use
// when the backend's chat agent is unavailable.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/litmap"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Context excerpts are trimmed to keep prompts small.
const (
	maxContextRunes = 300
	maxQuoteRunes   = 200
)

const systemInstruction = "You are a literary historian and cultural guide for the Living Literary Map. " +
	"A user is exploring a location on an interactive literary map and has asked a question about it. " +
	"Answer in 2-3 concise, engaging sentences. Be specific and accurate about books, authors and historical events."

var _ litmap.Chatter = (*Chatter)(nil)

// Chatter implements litmap.Chatter using Google Gemini.
type Chatter struct {
	client *genai.Client
	model  string
}

// NewChatter creates a new Chatter. An empty model selects DefaultModel.
func NewChatter(client *genai.Client, model string) *Chatter {
	if model == "" {
		model = DefaultModel
	}
	return &Chatter{client: client, model: model}
}

// Chat answers a question about the place described by place.
func (c *Chatter) Chat(ctx context.Context, question string, place *litmap.ChatContext) (*litmap.ChatAnswer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, litmap.Errorf(litmap.EINVALID, "question required")
	}

	start := time.Now()
	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(question, place)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, litmap.Errorf(litmap.EUNAVAILABLE, "gemini: %v", err)
	}
	if result == nil {
		return nil, litmap.Errorf(litmap.EINTERNAL, "gemini returned nil result")
	}

	answer := strings.TrimSpace(result.Text())
	if answer == "" {
		return nil, litmap.Errorf(litmap.EINTERNAL, "gemini returned an empty answer")
	}
	return &litmap.ChatAnswer{
		Answer:    answer,
		ElapsedMS: time.Since(start).Milliseconds(),
	}, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the prompt from the question and the place being
// explored. A nil place yields the question alone.
func BuildUserPrompt(question string, place *litmap.ChatContext) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "User question: %s", question)
	if place == nil {
		return sb.String()
	}
	if place.Title != "" {
		fmt.Fprintf(&sb, "\nLocation: %s", place.Title)
	}
	if place.Book != "" {
		fmt.Fprintf(&sb, "\nBook: %s", place.Book)
	}
	if place.Era != "" {
		fmt.Fprintf(&sb, "\nEra: %s", place.Era)
	}
	if place.HistoricalContext != "" {
		fmt.Fprintf(&sb, "\nHistorical context: %s", truncate(place.HistoricalContext, maxContextRunes))
	}
	if place.Quote != "" {
		fmt.Fprintf(&sb, "\nLiterary quote: %q", truncate(place.Quote, maxQuoteRunes))
	}
	return sb.String()
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
