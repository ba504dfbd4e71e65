package domain

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/crisisvoices/backend/internal/geo"
)

// CrisisRadiusKm is the distance from a crisis centre within which stories
// are accepted.
const CrisisRadiusKm = geo.DefaultMaxDistanceKm

type StoryService struct {
	stories StoryRepository
	crises  CrisisRepository
	images  ImageStore
	limits  UploadLimits
	newID   IDGenerator
	now     Clock
	logger  *zap.Logger
}

type StoryServiceOption func(*StoryService)

// WithImageStore moves inline images out of the story record on creation
func WithImageStore(images ImageStore) StoryServiceOption {
	return func(s *StoryService) { s.images = images }
}

func WithUploadLimits(limits UploadLimits) StoryServiceOption {
	return func(s *StoryService) { s.limits = limits }
}

func WithIDGenerator(gen IDGenerator) StoryServiceOption {
	return func(s *StoryService) { s.newID = gen }
}

func WithClock(now Clock) StoryServiceOption {
	return func(s *StoryService) { s.now = now }
}

func NewStoryService(stories StoryRepository, crises CrisisRepository, logger *zap.Logger, opts ...StoryServiceOption) *StoryService {
	s := &StoryService{
		stories: stories,
		crises:  crises,
		limits:  DefaultUploadLimits(),
		newID:   UUIDGenerator,
		now:     utcNow,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitStory runs a client submission through the full pipeline: the
// client-side verification flag, field validation, then CreateStory.
func (s *StoryService) SubmitStory(ctx context.Context, candidate StoryCandidate, prov Provenance) (*Story, error) {
	if !candidate.IsLocationVerified {
		return nil, fmt.Errorf("%w: verify your location before submitting", ErrLocationNotVerified)
	}

	validated, err := ValidateCandidate(candidate, s.limits)
	if err != nil {
		return nil, err
	}

	return s.CreateStory(ctx, validated, prov)
}

// CreateStory persists a validated story as pending. The submitted position
// is checked again against the crisis it names, independently of what the
// client reported.
func (s *StoryService) CreateStory(ctx context.Context, v ValidatedStory, prov Provenance) (*Story, error) {
	loc := v.Location()

	crisis, err := s.crises.GetCrisisByID(ctx, loc.CrisisID)
	if err != nil {
		if errors.Is(err, ErrCrisisNotFound) {
			return nil, fmt.Errorf("%w: unknown crisis %q", ErrLocationNotVerified, loc.CrisisID)
		}
		return nil, err
	}

	if !crisis.AcceptsStories() {
		return nil, ErrSubmissionsClosed
	}

	if !withinCrisis(loc.Point(), crisis) {
		s.logger.Warn("story rejected outside crisis area",
			zap.String("crisis_id", crisis.ID),
			zap.Float64("distance_km", geo.Round2(geo.DistanceKm(loc.Point(), crisis.Location.Point()))),
			zap.String("ip", prov.IP),
		)
		return nil, fmt.Errorf("%w: you must be within %.0f km of the crisis", ErrLocationNotVerified, CrisisRadiusKm)
	}

	images := v.Images()
	offloaded := false
	if s.images != nil && len(images) > 0 {
		images, err = s.images.StoreImages(ctx, images)
		if err != nil {
			return nil, fmt.Errorf("store images: %w", err)
		}
		offloaded = true
	}

	story := &Story{
		ID:                 s.newID(),
		Title:              v.Title(),
		Content:            v.Content(),
		Excerpt:            v.Excerpt(),
		Author:             v.Author(),
		Images:             images,
		Location:           loc,
		ModerationStatus:   StatusPending,
		SubmittedAt:        s.now(),
		Likes:              0,
		IsLocationVerified: true,
		SubmitterIP:        prov.IP,
		SubmitterUserAgent: prov.UserAgent,
		SubmitterUserID:    prov.UserID,
	}

	created, err := s.stories.CreateStory(ctx, story)
	if err != nil {
		if offloaded {
			s.images.DeleteImages(ctx, images)
		}
		return nil, err
	}

	s.logger.Info("story submitted",
		zap.String("story_id", created.ID),
		zap.String("crisis_id", crisis.ID),
		zap.Int("images", len(created.Images)),
	)
	return created, nil
}

// GetApprovedStoriesByCrisis lists the approved stories of a crisis in
// submission order, without provenance.
func (s *StoryService) GetApprovedStoriesByCrisis(ctx context.Context, crisisID string) ([]*Story, error) {
	stories, err := s.stories.ListStories(ctx, StatusApproved, crisisID)
	if err != nil {
		return nil, err
	}
	return publicStories(stories), nil
}

// GetPendingStories lists every story awaiting moderation, across crises
func (s *StoryService) GetPendingStories(ctx context.Context) ([]*Story, error) {
	return s.stories.ListStories(ctx, StatusPending, "")
}

func (s *StoryService) GetStoryByID(ctx context.Context, id string) (*Story, error) {
	return s.stories.GetStoryByID(ctx, id)
}

// UpdateStoryModerationStatus applies a moderator's decision to a story
func (s *StoryService) UpdateStoryModerationStatus(ctx context.Context, action ModerationAction) (*Story, error) {
	if err := action.Validate(); err != nil {
		return nil, err
	}

	story, err := s.stories.ModerateStory(ctx, action, s.now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("story moderated",
		zap.String("story_id", story.ID),
		zap.String("status", string(story.ModerationStatus)),
		zap.String("moderator", action.ModeratorID),
	)
	return story, nil
}

// LikeStory adds one like and returns the updated story
func (s *StoryService) LikeStory(ctx context.Context, id string) (*Story, error) {
	story, err := s.stories.IncrementLikes(ctx, id)
	if err != nil {
		return nil, err
	}
	return story.Public(), nil
}

// IsLocationWithinCrisis reports whether (lat, lng) lies within
// CrisisRadiusKm of the crisis. An unknown crisis is never a match.
func (s *StoryService) IsLocationWithinCrisis(ctx context.Context, lat, lng float64, crisisID string) (bool, error) {
	crisis, err := s.crises.GetCrisisByID(ctx, crisisID)
	if err != nil {
		if errors.Is(err, ErrCrisisNotFound) {
			return false, nil
		}
		return false, err
	}
	return withinCrisis(geo.Point{Lat: lat, Lng: lng}, crisis), nil
}

func withinCrisis(p geo.Point, crisis *Crisis) bool {
	return geo.WithinRadius(p, crisis.Location.Point(), CrisisRadiusKm)
}

func publicStories(stories []*Story) []*Story {
	out := make([]*Story, 0, len(stories))
	for _, st := range stories {
		out = append(out, st.Public())
	}
	return out
}
