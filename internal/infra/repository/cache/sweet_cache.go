package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/sweetshop/internal/infra/repository/db/model"
	redis_cache "github.com/RoyceAzure/lab/rj_redis/pkg/cache"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sweetCacheTTL = 10 * time.Minute

// SweetCache 甜點單筆查詢的read-through快取
// 只存JSON snapshot, 任何mutation都直接invalidate, 不做部分更新
type SweetCache struct {
	cache redis_cache.Cache
}

func NewSweetCache(cache redis_cache.Cache) *SweetCache {
	return &SweetCache{cache: cache}
}

// Get 取得快取的甜點, cache miss回傳(nil, nil)
func (c *SweetCache) Get(ctx context.Context, id uuid.UUID) (*model.Sweet, error) {
	value, err := c.cache.Get(ctx, id.String())
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	sweetJSON, ok := value.(string)
	if !ok {
		return nil, errors.New("unexpected cache value type")
	}

	var sweet model.Sweet
	if err := json.Unmarshal([]byte(sweetJSON), &sweet); err != nil {
		return nil, err
	}
	return &sweet, nil
}

func (c *SweetCache) Set(ctx context.Context, sweet *model.Sweet) error {
	sweetJSON, err := json.Marshal(sweet)
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, sweet.ID.String(), sweetJSON, sweetCacheTTL)
}

func (c *SweetCache) Delete(ctx context.Context, id uuid.UUID) error {
	return c.cache.Delete(ctx, id.String())
}
