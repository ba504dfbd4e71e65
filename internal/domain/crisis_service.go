package domain

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/crisisvoices/backend/internal/geo"
	"github.com/crisisvoices/backend/pkg/validator"
)

type CrisisService struct {
	repo   CrisisRepository
	now    Clock
	logger *zap.Logger
}

func NewCrisisService(repo CrisisRepository, logger *zap.Logger) *CrisisService {
	return &CrisisService{repo: repo, now: utcNow, logger: logger}
}

func (s *CrisisService) GetCrisisByID(ctx context.Context, id string) (*Crisis, error) {
	return s.repo.GetCrisisByID(ctx, id)
}

// GetAllActiveCrises returns active crises ordered by id
func (s *CrisisService) GetAllActiveCrises(ctx context.Context) ([]*Crisis, error) {
	return s.repo.GetAllActiveCrises(ctx)
}

// UpsertCrisis creates or replaces a crisis record. CreatedAt is kept from
// the stored record when one exists.
func (s *CrisisService) UpsertCrisis(ctx context.Context, c Crisis) (*Crisis, error) {
	c.ID = strings.TrimSpace(c.ID)
	c.Name = strings.TrimSpace(c.Name)
	c.Location.Name = strings.TrimSpace(c.Location.Name)
	if c.Severity == "" {
		c.Severity = SeverityMedium
	}
	if errs := validator.Struct(c); errs.HasErrors() {
		return nil, errs
	}

	now := s.now()
	c.UpdatedAt = now
	c.CreatedAt = now
	existing, err := s.repo.GetCrisisByID(ctx, c.ID)
	switch {
	case err == nil:
		c.CreatedAt = existing.CreatedAt
	case !errors.Is(err, ErrCrisisNotFound):
		return nil, err
	}

	saved, err := s.repo.UpsertCrisis(ctx, &c)
	if err != nil {
		return nil, err
	}
	s.logger.Info("crisis saved",
		zap.String("crisis_id", saved.ID),
		zap.Bool("active", saved.IsActive),
		zap.Bool("submissions", saved.AllowStorySubmissions),
	)
	return saved, nil
}

// Seed upserts crises that do not exist yet. Existing records are left
// untouched so operator changes survive restarts.
func (s *CrisisService) Seed(ctx context.Context, crises []Crisis) error {
	for _, c := range crises {
		_, err := s.repo.GetCrisisByID(ctx, c.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrCrisisNotFound) {
			return err
		}
		if _, err := s.UpsertCrisis(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// VerifyLocationParams selects the verification target either by explicit
// coordinates or by crisis id. CrisisID wins when both are given.
type VerifyLocationParams struct {
	UserLat     *float64 `json:"userLat"`
	UserLng     *float64 `json:"userLng"`
	TargetLat   *float64 `json:"targetLat"`
	TargetLng   *float64 `json:"targetLng"`
	CrisisID    string   `json:"crisisId"`
	MaxDistance float64  `json:"maxDistance"`
}

// VerifyLocation checks whether the user's position lies within range of
// the target.
func (s *CrisisService) VerifyLocation(ctx context.Context, p VerifyLocationParams) (geo.VerificationResult, error) {
	var errs validator.ValidationErrors
	if p.UserLat == nil {
		errs.Add("userLat", "is required")
	}
	if p.UserLng == nil {
		errs.Add("userLng", "is required")
	}

	var target geo.Point
	crisisID := strings.TrimSpace(p.CrisisID)
	if crisisID == "" {
		if p.TargetLat == nil {
			errs.Add("targetLat", "is required")
		}
		if p.TargetLng == nil {
			errs.Add("targetLng", "is required")
		}
	}
	if errs.HasErrors() {
		return geo.VerificationResult{}, errs
	}

	if crisisID != "" {
		crisis, err := s.repo.GetCrisisByID(ctx, crisisID)
		if err != nil {
			return geo.VerificationResult{}, err
		}
		target = crisis.Location.Point()
	} else {
		target = geo.Point{Lat: *p.TargetLat, Lng: *p.TargetLng}
	}

	return geo.Verify(geo.Point{Lat: *p.UserLat, Lng: *p.UserLng}, target, p.MaxDistance)
}

// DefaultCrises is the registry loaded when no seed file is configured
func DefaultCrises() []Crisis {
	return []Crisis{
		{
			ID:                    "ukraine-conflict",
			Name:                  "Ukraine Conflict",
			Description:           "Armed conflict affecting civilians across Ukraine.",
			Location:              CrisisLocation{Lat: 50.4501, Lng: 30.5234, Name: "Kyiv, Ukraine"},
			Severity:              SeverityCritical,
			IsActive:              true,
			AllowStorySubmissions: true,
		},
		{
			ID:                    "gaza-crisis",
			Name:                  "Gaza Humanitarian Crisis",
			Description:           "Humanitarian emergency in the Gaza Strip.",
			Location:              CrisisLocation{Lat: 31.5017, Lng: 34.4668, Name: "Gaza City"},
			Severity:              SeverityCritical,
			IsActive:              true,
			AllowStorySubmissions: true,
		},
		{
			ID:                    "sudan-conflict",
			Name:                  "Sudan Conflict",
			Description:           "Conflict and displacement in Sudan.",
			Location:              CrisisLocation{Lat: 15.5007, Lng: 32.5599, Name: "Khartoum, Sudan"},
			Severity:              SeverityHigh,
			IsActive:              true,
			AllowStorySubmissions: true,
		},
	}
}
