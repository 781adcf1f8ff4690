package litmap

import (
	"context"
	"time"
)

// Chat roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatFallbackAnswer is shown when a question could not be answered.
const ChatFallbackAnswer = "Sorry, I couldn't answer that right now."

// ChatContext describes the place a question is asked about.
type ChatContext struct {
	Title             string `json:"title,omitempty"`
	Book              string `json:"book,omitempty"`
	Era               string `json:"era,omitempty"`
	Year              int    `json:"year,omitempty"`
	Quote             string `json:"quote,omitempty"`
	HistoricalContext string `json:"historical_context,omitempty"`
	Mood              string `json:"mood,omitempty"`
}

// NewChatContext builds a chat context from a landmark. Archivist details,
// when present, replace the landmark's own book and historical context.
func NewChatContext(l *Landmark, archivist *ArchivistRecord) *ChatContext {
	c := &ChatContext{}
	if l != nil {
		c.Title = l.Title
		c.Book = l.Book
		c.Era = l.Era
		c.Year = l.Year
		c.Quote = l.Quote
		c.HistoricalContext = l.HistoricalContext
		c.Mood = l.Mood
	}
	if archivist != nil {
		c.HistoricalContext = archivist.HistoricalContext
		c.Book = archivist.Book
	}
	return c
}

// ChatAnswer is the answer to a question about a place.
type ChatAnswer struct {
	Answer    string `json:"answer"`
	ElapsedMS int64  `json:"elapsed_ms"`
}

// Chatter answers questions about a place.
type Chatter interface {
	// Chat answers question using the optional place context.
	// Returns EINVALID for a blank question.
	Chat(ctx context.Context, question string, place *ChatContext) (*ChatAnswer, error)
}

// ChatMessage is one entry of the chat transcript.
type ChatMessage struct {
	ID         string    `json:"id"`
	Role       string    `json:"role"`
	Text       string    `json:"text"`
	ElapsedMS  int64     `json:"elapsedMs"`
	LandmarkID string    `json:"landmarkId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate returns an error if the message contains invalid fields.
func (m *ChatMessage) Validate() error {
	if m.Role != RoleUser && m.Role != RoleAssistant {
		return Errorf(EINVALID, "chat role must be %q or %q", RoleUser, RoleAssistant)
	}
	if m.Text == "" {
		return Errorf(EINVALID, "chat message text required")
	}
	return nil
}

// ChatService represents a service for managing the chat transcript.
type ChatService interface {
	// CreateMessage appends a message to the transcript.
	CreateMessage(ctx context.Context, msg *ChatMessage) error

	// FindMessages retrieves messages in chronological order.
	FindMessages(ctx context.Context, filter ChatFilter) ([]*ChatMessage, error)

	// ClearMessages removes every message. Returns the number removed.
	ClearMessages(ctx context.Context) (int, error)
}

// ChatFilter represents a filter for FindMessages.
type ChatFilter struct {
	LandmarkID *string `json:"landmarkId"`

	// Limit keeps only the most recent messages when positive.
	Limit int `json:"limit"`
}
