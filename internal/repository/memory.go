package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/crisisvoices/backend/internal/domain"
)

var (
	_ domain.StoryRepository        = (*MemoryRepository)(nil)
	_ domain.CrisisRepository       = (*MemoryRepository)(nil)
	_ domain.UserRepository         = (*MemoryRepository)(nil)
	_ domain.ConversationRepository = (*MemoryRepository)(nil)
)

// MemoryRepository keeps every record in process memory. All operations
// take a single lock, so each one is atomic with respect to the others and
// readers never observe a half-applied update.
type MemoryRepository struct {
	mu sync.RWMutex

	stories    map[string]*domain.Story
	storyOrder []string
	crises     map[string]*domain.Crisis

	users map[uuid.UUID]*domain.User

	conversations map[uuid.UUID]*domain.Conversation
	pairs         map[[2]uuid.UUID]uuid.UUID
	messages      map[uuid.UUID][]*domain.Message

	now func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		stories:       make(map[string]*domain.Story),
		crises:        make(map[string]*domain.Crisis),
		users:         make(map[uuid.UUID]*domain.User),
		conversations: make(map[uuid.UUID]*domain.Conversation),
		pairs:         make(map[[2]uuid.UUID]uuid.UUID),
		messages:      make(map[uuid.UUID][]*domain.Message),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Ping always succeeds; it lets health checks treat both stores alike
func (r *MemoryRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Stories

func (r *MemoryRepository) CreateStory(ctx context.Context, story *domain.Story) (*domain.Story, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.stories[story.ID]; ok {
		return nil, fmt.Errorf("story %q already exists", story.ID)
	}
	stored := story.Clone()
	r.stories[stored.ID] = stored
	r.storyOrder = append(r.storyOrder, stored.ID)
	return stored.Clone(), nil
}

func (r *MemoryRepository) GetStoryByID(ctx context.Context, id string) (*domain.Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.stories[id]
	if !ok {
		return nil, domain.ErrStoryNotFound
	}
	return s.Clone(), nil
}

func (r *MemoryRepository) ListStories(ctx context.Context, status domain.ModerationStatus, crisisID string) ([]*domain.Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Story, 0)
	for _, id := range r.storyOrder {
		s := r.stories[id]
		if s.ModerationStatus != status {
			continue
		}
		if crisisID != "" && s.Location.CrisisID != crisisID {
			continue
		}
		out = append(out, s.Clone())
	}
	return out, nil
}

func (r *MemoryRepository) ModerateStory(ctx context.Context, action domain.ModerationAction, at time.Time) (*domain.Story, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.stories[action.StoryID]
	if !ok {
		return nil, domain.ErrStoryNotFound
	}
	// Apply to a copy so a failed transition leaves the record untouched
	next := s.Clone()
	if err := next.ApplyModeration(action, at); err != nil {
		return nil, err
	}
	r.stories[next.ID] = next
	return next.Clone(), nil
}

func (r *MemoryRepository) IncrementLikes(ctx context.Context, id string) (*domain.Story, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.stories[id]
	if !ok {
		return nil, domain.ErrStoryNotFound
	}
	s.Likes++
	return s.Clone(), nil
}

// Crises

func (r *MemoryRepository) GetCrisisByID(ctx context.Context, id string) (*domain.Crisis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.crises[id]
	if !ok {
		return nil, domain.ErrCrisisNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *MemoryRepository) GetAllActiveCrises(ctx context.Context) ([]*domain.Crisis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Crisis, 0, len(r.crises))
	for _, c := range r.crises {
		if c.IsActive {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepository) UpsertCrisis(ctx context.Context, crisis *domain.Crisis) (*domain.Crisis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *crisis
	r.crises[stored.ID] = &stored
	cp := stored
	return &cp, nil
}
