package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/crisisvoices/backend/internal/domain"
)

const userColumns = `id, email, name, avatar_url, google_id, role, email_verified, created_at, updated_at`

// CreateUser creates a new user
func (r *PostgresRepository) CreateUser(ctx context.Context, params domain.CreateUserParams) (*domain.User, error) {
	query := `
		INSERT INTO users (email, name, avatar_url, google_id, role, email_verified)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
		RETURNING ` + userColumns

	role := params.Role
	if role == "" {
		role = domain.RoleUser
	}
	row := r.db.QueryRow(ctx, query,
		strings.ToLower(params.Email),
		params.Name,
		params.AvatarURL,
		params.GoogleID,
		string(role),
		params.EmailVerified,
	)
	u, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, err
	}
	return u, nil
}

// GetUserByID retrieves a user by ID
func (r *PostgresRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// GetUserByEmail retrieves a user by email
func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, strings.ToLower(email))
	return scanUser(row)
}

// GetUserByGoogleID retrieves a user by Google ID
func (r *PostgresRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE google_id = $1`, googleID)
	return scanUser(row)
}

// LinkGoogleAccount attaches a Google identity to an existing user
func (r *PostgresRepository) LinkGoogleAccount(ctx context.Context, userID uuid.UUID, googleID string) (*domain.User, error) {
	query := `UPDATE users SET google_id = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + userColumns
	return scanUser(r.db.QueryRow(ctx, query, userID, googleID))
}

// UpdateUserRole changes the role of a user
func (r *PostgresRepository) UpdateUserRole(ctx context.Context, userID uuid.UUID, role domain.Role) (*domain.User, error) {
	query := `UPDATE users SET role = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + userColumns
	return scanUser(r.db.QueryRow(ctx, query, userID, string(role)))
}

// GetOrCreateConversation returns the conversation for the unordered pair
func (r *PostgresRepository) GetOrCreateConversation(ctx context.Context, a, b uuid.UUID) (*domain.Conversation, error) {
	key := pairKey(a, b)
	_, err := r.db.Exec(ctx, `
		INSERT INTO conversations (user_a, user_b) VALUES ($1, $2)
		ON CONFLICT (user_a, user_b) DO NOTHING
	`, key[0], key[1])
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, conversationSelect+` WHERE c.user_a = $1 AND c.user_b = $2`, key[0], key[1])
	return scanConversation(row)
}

// GetConversationByID retrieves a conversation with its latest message
func (r *PostgresRepository) GetConversationByID(ctx context.Context, id uuid.UUID) (*domain.Conversation, error) {
	row := r.db.QueryRow(ctx, conversationSelect+` WHERE c.id = $1`, id)
	return scanConversation(row)
}

// ListConversations lists a user's conversations, most recently active first
func (r *PostgresRepository) ListConversations(ctx context.Context, userID uuid.UUID) ([]*domain.Conversation, error) {
	rows, err := r.db.Query(ctx, conversationSelect+` WHERE c.user_a = $1 OR c.user_b = $1 ORDER BY c.updated_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*domain.Conversation, 0)
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// CreateMessage stores a message and bumps the conversation's activity time
func (r *PostgresRepository) CreateMessage(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	var out *domain.Message
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE conversations SET updated_at = $2 WHERE id = $1`, msg.ConversationID, msg.CreatedAt)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrConversationNotFound
		}

		row := tx.QueryRow(ctx, `
			INSERT INTO messages (id, conversation_id, sender_id, content, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, conversation_id, sender_id, content, created_at
		`, msg.ID, msg.ConversationID, msg.SenderID, msg.Content, msg.CreatedAt)
		out, err = scanMessage(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListMessages returns messages after since, oldest first
func (r *PostgresRepository) ListMessages(ctx context.Context, conversationID uuid.UUID, since time.Time, limit int) ([]*domain.Message, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, conversation_id, sender_id, content, created_at
		FROM messages
		WHERE conversation_id = $1 AND created_at > $2
		ORDER BY created_at ASC, id ASC
		LIMIT $3
	`, conversationID, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*domain.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

const conversationSelect = `
	SELECT c.id, c.user_a, c.user_b, c.created_at, c.updated_at,
		m.id, m.sender_id, m.content, m.created_at
	FROM conversations c
	LEFT JOIN LATERAL (
		SELECT id, sender_id, content, created_at
		FROM messages
		WHERE conversation_id = c.id
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	) m ON TRUE`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var role string
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.AvatarURL,
		&user.GoogleID,
		&role,
		&user.EmailVerified,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	user.Role = domain.Role(role)
	return &user, nil
}

func scanConversation(row pgx.Row) (*domain.Conversation, error) {
	var c domain.Conversation
	var userA, userB uuid.UUID
	var msgID, senderID *uuid.UUID
	var content *string
	var sentAt *time.Time
	err := row.Scan(
		&c.ID, &userA, &userB, &c.CreatedAt, &c.UpdatedAt,
		&msgID, &senderID, &content, &sentAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrConversationNotFound
		}
		return nil, err
	}
	c.Participants = []uuid.UUID{userA, userB}
	if msgID != nil {
		c.LastMessage = &domain.Message{
			ID:             *msgID,
			ConversationID: c.ID,
			SenderID:       *senderID,
			Content:        *content,
			CreatedAt:      *sentAt,
		}
	}
	return &c, nil
}

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var m domain.Message
	err := row.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.Content, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrConversationNotFound
		}
		return nil, err
	}
	return &m, nil
}
