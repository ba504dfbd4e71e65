package cache

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/crisisvoices/backend/internal/domain"
)

var _ domain.CrisisRepository = (*CrisisRepository)(nil)

// CrisisRepository serves GetAllActiveCrises from an ActiveCrisisStore and
// falls back to the wrapped repository. Cache failures are logged and never
// returned to the caller.
type CrisisRepository struct {
	next   domain.CrisisRepository
	store  ActiveCrisisStore
	ttl    time.Duration
	logger *zap.Logger
}

func NewCrisisRepository(next domain.CrisisRepository, store ActiveCrisisStore, ttl time.Duration, logger *zap.Logger) *CrisisRepository {
	return &CrisisRepository{next: next, store: store, ttl: ttl, logger: logger}
}

func (r *CrisisRepository) GetCrisisByID(ctx context.Context, id string) (*domain.Crisis, error) {
	return r.next.GetCrisisByID(ctx, id)
}

func (r *CrisisRepository) GetAllActiveCrises(ctx context.Context) ([]*domain.Crisis, error) {
	cached, err := r.store.GetActive(ctx)
	if err != nil {
		r.logger.Warn("crisis cache read failed", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	crises, err := r.next.GetAllActiveCrises(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.store.SetActive(ctx, crises, r.ttl); err != nil {
		r.logger.Warn("crisis cache write failed", zap.Error(err))
	}
	return crises, nil
}

func (r *CrisisRepository) UpsertCrisis(ctx context.Context, crisis *domain.Crisis) (*domain.Crisis, error) {
	saved, err := r.next.UpsertCrisis(ctx, crisis)
	if err != nil {
		return nil, err
	}
	if err := r.store.Invalidate(ctx); err != nil {
		r.logger.Warn("crisis cache invalidation failed", zap.String("crisis_id", saved.ID), zap.Error(err))
	}
	return saved, nil
}
