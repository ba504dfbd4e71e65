package api

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/crisisvoices/backend/internal/domain"
	"github.com/crisisvoices/backend/internal/geo"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// StoryService is the story pipeline as seen by the HTTP layer
type StoryService interface {
	SubmitStory(ctx context.Context, candidate domain.StoryCandidate, prov domain.Provenance) (*domain.Story, error)
	GetApprovedStoriesByCrisis(ctx context.Context, crisisID string) ([]*domain.Story, error)
	GetPendingStories(ctx context.Context) ([]*domain.Story, error)
	UpdateStoryModerationStatus(ctx context.Context, action domain.ModerationAction) (*domain.Story, error)
	LikeStory(ctx context.Context, id string) (*domain.Story, error)
}

type CrisisService interface {
	GetCrisisByID(ctx context.Context, id string) (*domain.Crisis, error)
	GetAllActiveCrises(ctx context.Context) ([]*domain.Crisis, error)
	UpsertCrisis(ctx context.Context, c domain.Crisis) (*domain.Crisis, error)
	VerifyLocation(ctx context.Context, p domain.VerifyLocationParams) (geo.VerificationResult, error)
}

type AuthService interface {
	GoogleLogin(ctx context.Context, idToken string) (*domain.LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*domain.RefreshResult, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type ConversationService interface {
	StartConversation(ctx context.Context, userID, targetID uuid.UUID) (*domain.Conversation, error)
	ListConversations(ctx context.Context, userID uuid.UUID) ([]*domain.Conversation, error)
	SendMessage(ctx context.Context, conversationID, senderID uuid.UUID, content string) (*domain.Message, error)
	GetMessages(ctx context.Context, conversationID, userID uuid.UUID, since time.Time, limit int) ([]*domain.Message, error)
}

// Pinger is implemented by backing stores that can report their health
type Pinger interface {
	Ping(ctx context.Context) error
}
