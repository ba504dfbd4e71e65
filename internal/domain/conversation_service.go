package domain

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/crisisvoices/backend/pkg/validator"
)

const (
	MaxMessageLength    = 2000
	DefaultMessagesPage = 50
	MaxMessagesPage     = 200
)

type ConversationService struct {
	repo  ConversationRepository
	users UserRepository
	now   Clock
}

func NewConversationService(repo ConversationRepository, users UserRepository) *ConversationService {
	return &ConversationService{repo: repo, users: users, now: utcNow}
}

func (s *ConversationService) StartConversation(ctx context.Context, userID, targetID uuid.UUID) (*Conversation, error) {
	if targetID == uuid.Nil {
		return nil, validator.ValidationErrors{{Field: "targetUserId", Message: "is required"}}
	}
	if userID == targetID {
		return nil, validator.ValidationErrors{{Field: "targetUserId", Message: "cannot start a conversation with yourself"}}
	}
	if _, err := s.users.GetUserByID(ctx, targetID); err != nil {
		return nil, err
	}
	return s.repo.GetOrCreateConversation(ctx, userID, targetID)
}

func (s *ConversationService) ListConversations(ctx context.Context, userID uuid.UUID) ([]*Conversation, error) {
	return s.repo.ListConversations(ctx, userID)
}

func (s *ConversationService) SendMessage(ctx context.Context, conversationID, senderID uuid.UUID, content string) (*Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, validator.ValidationErrors{{Field: "content", Message: "is required"}}
	}
	if utf8.RuneCountInString(content) > MaxMessageLength {
		return nil, validator.ValidationErrors{{Field: "content", Message: "must be at most 2000 characters"}}
	}

	if _, err := s.participantConversation(ctx, conversationID, senderID); err != nil {
		return nil, err
	}

	return s.repo.CreateMessage(ctx, &Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		CreatedAt:      s.now(),
	})
}

// GetMessages polls a conversation for messages newer than since. A zero
// since returns the conversation from the start.
func (s *ConversationService) GetMessages(ctx context.Context, conversationID, userID uuid.UUID, since time.Time, limit int) ([]*Message, error) {
	if _, err := s.participantConversation(ctx, conversationID, userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultMessagesPage
	}
	if limit > MaxMessagesPage {
		limit = MaxMessagesPage
	}
	return s.repo.ListMessages(ctx, conversationID, since, limit)
}

func (s *ConversationService) participantConversation(ctx context.Context, conversationID, userID uuid.UUID) (*Conversation, error) {
	conv, err := s.repo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(userID) {
		return nil, ErrNotParticipant
	}
	return conv, nil
}
