package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Conversation is a direct message thread between exactly two users
type Conversation struct {
	ID           uuid.UUID   `json:"id"`
	Participants []uuid.UUID `json:"participants"`
	LastMessage  *Message    `json:"lastMessage,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// HasParticipant reports whether userID belongs to the conversation
func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversationId"`
	SenderID       uuid.UUID `json:"senderId"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ConversationRepository interface {
	// GetOrCreateConversation returns the conversation between a and b,
	// creating it on first use. The pair is unordered.
	GetOrCreateConversation(ctx context.Context, a, b uuid.UUID) (*Conversation, error)
	GetConversationByID(ctx context.Context, id uuid.UUID) (*Conversation, error)
	ListConversations(ctx context.Context, userID uuid.UUID) ([]*Conversation, error)
	CreateMessage(ctx context.Context, msg *Message) (*Message, error)
	// ListMessages returns messages created strictly after since, oldest first
	ListMessages(ctx context.Context, conversationID uuid.UUID, since time.Time, limit int) ([]*Message, error)
}
