package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/litmap"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ litmap.ChatService = (*ChatService)(nil)

// ChatService implements litmap.ChatService using SQLite.
type ChatService struct {
	db *DB
}

// NewChatService creates a new ChatService.
func NewChatService(db *DB) *ChatService {
	return &ChatService{db: db}
}

// CreateMessage appends a message to the transcript.
func (s *ChatService) CreateMessage(ctx context.Context, msg *litmap.ChatMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	msg.ID = uuid.New().String()
	msg.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chat_messages (id, role, text, elapsed_ms, landmark_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, msg.ID, msg.Role, msg.Text, msg.ElapsedMS, msg.LandmarkID, formatTimestamp(msg.CreatedAt))

	return err
}

// FindMessages retrieves messages in the order they were written. A positive
// limit keeps the most recent messages.
func (s *ChatService) FindMessages(ctx context.Context, filter litmap.ChatFilter) ([]*litmap.ChatMessage, error) {
	var inner strings.Builder
	var args []any

	inner.WriteString("SELECT id, role, text, elapsed_ms, landmark_id, created_at, rowid AS seq FROM chat_messages WHERE 1=1")
	if filter.LandmarkID != nil {
		inner.WriteString(" AND landmark_id = ?")
		args = append(args, *filter.LandmarkID)
	}
	inner.WriteString(" ORDER BY rowid DESC")
	appendPagination(&inner, &args, filter.Limit, 0)

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, role, text, elapsed_ms, landmark_id, created_at FROM ("+inner.String()+") ORDER BY seq ASC", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*litmap.ChatMessage
	for rows.Next() {
		var msg litmap.ChatMessage
		var createdAt string
		if err := rows.Scan(&msg.ID, &msg.Role, &msg.Text, &msg.ElapsedMS, &msg.LandmarkID, &createdAt); err != nil {
			return nil, err
		}
		if msg.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		messages = append(messages, &msg)
	}

	return messages, rows.Err()
}

// ClearMessages removes the whole transcript.
func (s *ChatService) ClearMessages(ctx context.Context) (int, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM chat_messages")
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	return int(n), err
}
