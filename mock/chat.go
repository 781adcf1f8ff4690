package mock

import (
	"context"

	"github.com/fwojciec/litmap"
)

var _ litmap.ChatService = (*ChatService)(nil)

// ChatService is a mock implementation of litmap.ChatService.
type ChatService struct {
	CreateMessageFn func(ctx context.Context, msg *litmap.ChatMessage) error
	FindMessagesFn  func(ctx context.Context, filter litmap.ChatFilter) ([]*litmap.ChatMessage, error)
	ClearMessagesFn func(ctx context.Context) (int, error)
}

func (s *ChatService) CreateMessage(ctx context.Context, msg *litmap.ChatMessage) error {
	return s.CreateMessageFn(ctx, msg)
}

func (s *ChatService) FindMessages(ctx context.Context, filter litmap.ChatFilter) ([]*litmap.ChatMessage, error) {
	return s.FindMessagesFn(ctx, filter)
}

func (s *ChatService) ClearMessages(ctx context.Context) (int, error) {
	return s.ClearMessagesFn(ctx)
}

var _ litmap.Chatter = (*Chatter)(nil)

// Chatter is a mock implementation of litmap.Chatter.
type Chatter struct {
	ChatFn func(ctx context.Context, question string, place *litmap.ChatContext) (*litmap.ChatAnswer, error)
}

func (c *Chatter) Chat(ctx context.Context, question string, place *litmap.ChatContext) (*litmap.ChatAnswer, error) {
	return c.ChatFn(ctx, question, place)
}
