package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/litmap"
)

// Ensure LoggingChatter implements litmap.Chatter.
var _ litmap.Chatter = (*LoggingChatter)(nil)

// LoggingChatter wraps a Chatter with request logging. Questions are logged
// by length only.
type LoggingChatter struct {
	next   litmap.Chatter
	logger *slog.Logger
}

// NewLoggingChatter creates a new LoggingChatter.
func NewLoggingChatter(next litmap.Chatter, logger *slog.Logger) *LoggingChatter {
	return &LoggingChatter{next: next, logger: logger}
}

// Chat delegates to the wrapped chatter and logs the exchange.
func (c *LoggingChatter) Chat(ctx context.Context, question string, place *litmap.ChatContext) (answer *litmap.ChatAnswer, err error) {
	defer func(begin time.Time) {
		var title string
		if place != nil {
			title = place.Title
		}
		c.logger.Info("chat",
			"place", title,
			"question_len", len(question),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Chat(ctx, question, place)
}
