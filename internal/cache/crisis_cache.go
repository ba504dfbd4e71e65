package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/crisisvoices/backend/internal/domain"
)

const activeCrisesKey = "crises:active"

// ActiveCrisisStore caches the list of active crises. GetActive returns
// (nil, nil) on a miss.
type ActiveCrisisStore interface {
	GetActive(ctx context.Context) ([]*domain.Crisis, error)
	SetActive(ctx context.Context, crises []*domain.Crisis, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type CrisisCache struct {
	client goredis.UniversalClient
	key    string
}

func NewCrisisCache(client goredis.UniversalClient) *CrisisCache {
	return &CrisisCache{client: client, key: activeCrisesKey}
}

func (c *CrisisCache) GetActive(ctx context.Context) ([]*domain.Crisis, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var crises []*domain.Crisis
	if err := json.Unmarshal(data, &crises); err != nil {
		return nil, err
	}
	return crises, nil
}

func (c *CrisisCache) SetActive(ctx context.Context, crises []*domain.Crisis, ttl time.Duration) error {
	b, err := json.Marshal(crises)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

func (c *CrisisCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
