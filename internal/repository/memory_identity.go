package repository

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crisisvoices/backend/internal/domain"
)

// Users

func (r *MemoryRepository) CreateUser(ctx context.Context, params domain.CreateUserParams) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(params.Email)
	for _, u := range r.users {
		if u.Email == email || (params.GoogleID != "" && u.GoogleID != nil && *u.GoogleID == params.GoogleID) {
			return nil, domain.ErrUserAlreadyExists
		}
	}

	role := params.Role
	if role == "" {
		role = domain.RoleUser
	}
	now := r.now()
	u := &domain.User{
		ID:            uuid.New(),
		Email:         email,
		Name:          params.Name,
		AvatarURL:     params.AvatarURL,
		Role:          role,
		EmailVerified: params.EmailVerified,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if params.GoogleID != "" {
		gid := params.GoogleID
		u.GoogleID = &gid
	}
	r.users[u.ID] = u
	return cloneUser(u), nil
}

func (r *MemoryRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *MemoryRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	return r.findUser(func(u *domain.User) bool {
		return u.GoogleID != nil && *u.GoogleID == googleID
	})
}

func (r *MemoryRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.ToLower(email)
	return r.findUser(func(u *domain.User) bool { return u.Email == email })
}

func (r *MemoryRepository) LinkGoogleAccount(ctx context.Context, userID uuid.UUID, googleID string) (*domain.User, error) {
	return r.updateUser(userID, func(u *domain.User) {
		gid := googleID
		u.GoogleID = &gid
	})
}

func (r *MemoryRepository) UpdateUserRole(ctx context.Context, userID uuid.UUID, role domain.Role) (*domain.User, error) {
	return r.updateUser(userID, func(u *domain.User) { u.Role = role })
}

func (r *MemoryRepository) findUser(match func(*domain.User) bool) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *MemoryRepository) updateUser(id uuid.UUID, fn func(*domain.User)) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	fn(u)
	u.UpdatedAt = r.now()
	return cloneUser(u), nil
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	if u.AvatarURL != nil {
		v := *u.AvatarURL
		c.AvatarURL = &v
	}
	if u.GoogleID != nil {
		v := *u.GoogleID
		c.GoogleID = &v
	}
	return &c
}

// Conversations

func (r *MemoryRepository) GetOrCreateConversation(ctx context.Context, a, b uuid.UUID) (*domain.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey(a, b)
	if id, ok := r.pairs[key]; ok {
		return r.conversationView(r.conversations[id]), nil
	}

	now := r.now()
	c := &domain.Conversation{
		ID:           uuid.New(),
		Participants: []uuid.UUID{key[0], key[1]},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.conversations[c.ID] = c
	r.pairs[key] = c.ID
	return r.conversationView(c), nil
}

func (r *MemoryRepository) GetConversationByID(ctx context.Context, id uuid.UUID) (*domain.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.conversations[id]
	if !ok {
		return nil, domain.ErrConversationNotFound
	}
	return r.conversationView(c), nil
}

func (r *MemoryRepository) ListConversations(ctx context.Context, userID uuid.UUID) ([]*domain.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Conversation, 0)
	for _, c := range r.conversations {
		if c.HasParticipant(userID) {
			out = append(out, r.conversationView(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r *MemoryRepository) CreateMessage(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.conversations[msg.ConversationID]
	if !ok {
		return nil, domain.ErrConversationNotFound
	}
	m := *msg
	r.messages[c.ID] = append(r.messages[c.ID], &m)
	c.UpdatedAt = m.CreatedAt
	out := m
	return &out, nil
}

func (r *MemoryRepository) ListMessages(ctx context.Context, conversationID uuid.UUID, since time.Time, limit int) ([]*domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.conversations[conversationID]; !ok {
		return nil, domain.ErrConversationNotFound
	}
	out := make([]*domain.Message, 0)
	for _, m := range r.messages[conversationID] {
		if !m.CreatedAt.After(since) {
			continue
		}
		cp := *m
		out = append(out, &cp)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// conversationView copies c and attaches its latest message. Callers hold r.mu.
func (r *MemoryRepository) conversationView(c *domain.Conversation) *domain.Conversation {
	cp := *c
	cp.Participants = append([]uuid.UUID(nil), c.Participants...)
	if msgs := r.messages[c.ID]; len(msgs) > 0 {
		last := *msgs[len(msgs)-1]
		cp.LastMessage = &last
	}
	return &cp
}

func pairKey(a, b uuid.UUID) [2]uuid.UUID {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	return [2]uuid.UUID{a, b}
}
