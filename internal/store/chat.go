package store

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const MaxChatHistory = 50

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func validateChatHistory(msgs []ChatMessage) error {
	for _, m := range msgs {
		if m.Role != ChatRoleUser && m.Role != ChatRoleAssistant {
			return fmt.Errorf("chat message %s: unknown role %q", m.ID, m.Role)
		}
	}
	return nil
}

func (s *Store) LoadChatHistory(ctx context.Context) []ChatMessage {
	msgs, ok := loadDocument(ctx, s, KeyChatHistory, schemaChatHistory, validateChatHistory)
	if !ok || msgs == nil {
		return []ChatMessage{}
	}
	return msgs
}

// SaveChatHistory keeps only the MaxChatHistory most recent messages.
func (s *Store) SaveChatHistory(ctx context.Context, msgs []ChatMessage) error {
	if len(msgs) > MaxChatHistory {
		msgs = msgs[len(msgs)-MaxChatHistory:]
	}
	if msgs == nil {
		msgs = []ChatMessage{}
	}
	return s.saveDocument(ctx, KeyChatHistory, schemaChatHistory, msgs)
}

func (s *Store) AddChatMessage(ctx context.Context, role ChatRole, content string) (*ChatMessage, error) {
	if role != ChatRoleUser && role != ChatRoleAssistant {
		return nil, fmt.Errorf("unknown chat role %q", role)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("empty chat message")
	}

	msg := ChatMessage{
		ID:        s.NewIDFunc("msg"),
		Role:      role,
		Content:   content,
		Timestamp: s.NowFunc(),
	}
	msgs := append(s.LoadChatHistory(ctx), msg)
	if err := s.SaveChatHistory(ctx, msgs); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *Store) ClearChatHistory(ctx context.Context) error {
	return s.SaveChatHistory(ctx, nil)
}
