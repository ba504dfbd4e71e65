package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/crisisvoices/backend/internal/domain"
)

var (
	_ domain.StoryRepository        = (*PostgresRepository)(nil)
	_ domain.CrisisRepository       = (*PostgresRepository)(nil)
	_ domain.UserRepository         = (*PostgresRepository)(nil)
	_ domain.ConversationRepository = (*PostgresRepository)(nil)
)

// PostgresRepository implements the domain repositories on PostgreSQL
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

const storyColumns = `id, title, content, excerpt, author, images,
	lat, lng, location_name, crisis_id,
	moderation_status, moderation_notes, moderated_by, moderated_at,
	submitted_at, likes, is_location_verified,
	submitter_ip, submitter_user_agent, submitter_user_id`

// CreateStory inserts a new story
func (r *PostgresRepository) CreateStory(ctx context.Context, s *domain.Story) (*domain.Story, error) {
	query := `
		INSERT INTO stories (id, title, content, excerpt, author, images,
			lat, lng, location_name, crisis_id,
			moderation_status, moderation_notes, moderated_by, moderated_at,
			submitted_at, likes, is_location_verified,
			submitter_ip, submitter_user_agent, submitter_user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING ` + storyColumns

	images := s.Images
	if images == nil {
		images = []string{}
	}

	row := r.db.QueryRow(ctx, query,
		s.ID, s.Title, s.Content, s.Excerpt, s.Author, images,
		s.Location.Lat, s.Location.Lng, s.Location.Name, s.Location.CrisisID,
		string(s.ModerationStatus), s.ModerationNotes, s.ModeratedBy, s.ModeratedAt,
		s.SubmittedAt, s.Likes, s.IsLocationVerified,
		s.SubmitterIP, s.SubmitterUserAgent, s.SubmitterUserID,
	)
	story, err := scanStory(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// crisis_id foreign key
			return nil, domain.ErrCrisisNotFound
		}
		return nil, err
	}
	return story, nil
}

// GetStoryByID retrieves a story by ID
func (r *PostgresRepository) GetStoryByID(ctx context.Context, id string) (*domain.Story, error) {
	row := r.db.QueryRow(ctx, `SELECT `+storyColumns+` FROM stories WHERE id = $1`, id)
	return scanStory(row)
}

// ListStories returns stories in a status, in submission order
func (r *PostgresRepository) ListStories(ctx context.Context, status domain.ModerationStatus, crisisID string) ([]*domain.Story, error) {
	query := `
		SELECT ` + storyColumns + `
		FROM stories
		WHERE moderation_status = $1 AND ($2::text = '' OR crisis_id = $2)
		ORDER BY seq ASC
	`
	rows, err := r.db.Query(ctx, query, string(status), crisisID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stories := make([]*domain.Story, 0)
	for rows.Next() {
		s, err := scanStory(rows)
		if err != nil {
			return nil, err
		}
		stories = append(stories, s)
	}
	return stories, rows.Err()
}

// ModerateStory locks the story row, applies the transition and writes it
// back in one transaction.
func (r *PostgresRepository) ModerateStory(ctx context.Context, action domain.ModerationAction, at time.Time) (*domain.Story, error) {
	var updated *domain.Story
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `SELECT `+storyColumns+` FROM stories WHERE id = $1 FOR UPDATE`, action.StoryID)
		story, err := scanStory(row)
		if err != nil {
			return err
		}
		if err := story.ApplyModeration(action, at); err != nil {
			return err
		}

		query := `
			UPDATE stories
			SET moderation_status = $2, moderation_notes = $3, moderated_by = $4, moderated_at = $5
			WHERE id = $1
			RETURNING ` + storyColumns
		updated, err = scanStory(tx.QueryRow(ctx, query,
			story.ID, string(story.ModerationStatus), story.ModerationNotes, story.ModeratedBy, story.ModeratedAt,
		))
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// IncrementLikes adds one like in a single statement
func (r *PostgresRepository) IncrementLikes(ctx context.Context, id string) (*domain.Story, error) {
	row := r.db.QueryRow(ctx, `UPDATE stories SET likes = likes + 1 WHERE id = $1 RETURNING `+storyColumns, id)
	return scanStory(row)
}

const crisisColumns = `id, name, description, lat, lng, location_name, severity,
	is_active, allow_story_submissions, created_at, updated_at`

// GetCrisisByID retrieves a crisis by ID
func (r *PostgresRepository) GetCrisisByID(ctx context.Context, id string) (*domain.Crisis, error) {
	row := r.db.QueryRow(ctx, `SELECT `+crisisColumns+` FROM crises WHERE id = $1`, id)
	return scanCrisis(row)
}

// GetAllActiveCrises lists active crises ordered by id
func (r *PostgresRepository) GetAllActiveCrises(ctx context.Context) ([]*domain.Crisis, error) {
	rows, err := r.db.Query(ctx, `SELECT `+crisisColumns+` FROM crises WHERE is_active = TRUE ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crises := make([]*domain.Crisis, 0)
	for rows.Next() {
		c, err := scanCrisis(rows)
		if err != nil {
			return nil, err
		}
		crises = append(crises, c)
	}
	return crises, rows.Err()
}

// UpsertCrisis inserts or replaces a crisis
func (r *PostgresRepository) UpsertCrisis(ctx context.Context, c *domain.Crisis) (*domain.Crisis, error) {
	query := `
		INSERT INTO crises (id, name, description, lat, lng, location_name, severity,
			is_active, allow_story_submissions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			location_name = EXCLUDED.location_name,
			severity = EXCLUDED.severity,
			is_active = EXCLUDED.is_active,
			allow_story_submissions = EXCLUDED.allow_story_submissions,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + crisisColumns

	row := r.db.QueryRow(ctx, query,
		c.ID, c.Name, c.Description, c.Location.Lat, c.Location.Lng, c.Location.Name, string(c.Severity),
		c.IsActive, c.AllowStorySubmissions, c.CreatedAt, c.UpdatedAt,
	)
	return scanCrisis(row)
}

// Helper functions for scanning rows

func scanStory(row pgx.Row) (*domain.Story, error) {
	var s domain.Story
	var status string
	err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Content,
		&s.Excerpt,
		&s.Author,
		&s.Images,
		&s.Location.Lat,
		&s.Location.Lng,
		&s.Location.Name,
		&s.Location.CrisisID,
		&status,
		&s.ModerationNotes,
		&s.ModeratedBy,
		&s.ModeratedAt,
		&s.SubmittedAt,
		&s.Likes,
		&s.IsLocationVerified,
		&s.SubmitterIP,
		&s.SubmitterUserAgent,
		&s.SubmitterUserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStoryNotFound
		}
		return nil, fmt.Errorf("scan story: %w", err)
	}
	s.ModerationStatus = domain.ModerationStatus(status)
	return &s, nil
}

func scanCrisis(row pgx.Row) (*domain.Crisis, error) {
	var c domain.Crisis
	var severity string
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Location.Lat,
		&c.Location.Lng,
		&c.Location.Name,
		&severity,
		&c.IsActive,
		&c.AllowStorySubmissions,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCrisisNotFound
		}
		return nil, fmt.Errorf("scan crisis: %w", err)
	}
	c.Severity = domain.Severity(severity)
	return &c, nil
}
