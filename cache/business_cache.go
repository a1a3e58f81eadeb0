package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/randexapp/randex/models"
	"github.com/randexapp/randex/repository"
	"github.com/redis/go-redis/v9"
)

// CachedBusinessRepository caches the directory read path. Redis failures
// fall back to the database; writes invalidate.
type CachedBusinessRepository struct {
	repo  repository.BusinessRepository
	redis *redis.Client
	ttl   time.Duration
}

func NewCachedBusinessRepository(repo repository.BusinessRepository, rdb *redis.Client) *CachedBusinessRepository {
	return &CachedBusinessRepository{
		repo:  repo,
		redis: rdb,
		ttl:   5 * time.Minute,
	}
}

func listKey(filter repository.BusinessFilter) string {
	return fmt.Sprintf("businesses:list:%s:%s", filter.Type, filter.Search)
}

func detailKey(id uuid.UUID) string {
	return fmt.Sprintf("business:%s", id)
}

func (c *CachedBusinessRepository) List(ctx context.Context, filter repository.BusinessFilter) ([]models.BusinessSummary, error) {
	key := listKey(filter)

	data, err := c.redis.Get(ctx, key).Bytes()
	if err == nil {
		var summaries []models.BusinessSummary
		if jsonErr := json.Unmarshal(data, &summaries); jsonErr == nil {
			return summaries, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("Redis error (continuing with DB): %v", err)
	}

	summaries, err := c.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(summaries); err == nil {
		if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
			log.Printf("Failed to cache business list: %v", err)
		}
	}
	return summaries, nil
}

func (c *CachedBusinessRepository) GetDetail(ctx context.Context, id uuid.UUID) (*models.BusinessDetail, error) {
	key := detailKey(id)

	data, err := c.redis.Get(ctx, key).Bytes()
	if err == nil {
		var detail models.BusinessDetail
		if jsonErr := json.Unmarshal(data, &detail); jsonErr == nil {
			return &detail, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("Redis error (continuing with DB): %v", err)
	}

	detail, err := c.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(detail); err == nil {
		if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
			log.Printf("Failed to cache business detail: %v", err)
		}
	}
	return detail, nil
}

// ListByOwner is an owner dashboard read, not worth caching.
func (c *CachedBusinessRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.BusinessSummary, error) {
	return c.repo.ListByOwner(ctx, ownerID)
}

func (c *CachedBusinessRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	return c.repo.GetByID(ctx, id)
}

func (c *CachedBusinessRepository) GetOwned(ctx context.Context, id, ownerID uuid.UUID) (*models.Business, error) {
	return c.repo.GetOwned(ctx, id, ownerID)
}

func (c *CachedBusinessRepository) Create(ctx context.Context, business *models.Business) error {
	c.invalidateLists(ctx)
	return c.repo.Create(ctx, business)
}

func (c *CachedBusinessRepository) Update(ctx context.Context, business *models.Business) error {
	c.invalidate(ctx, business.ID)
	return c.repo.Update(ctx, business)
}

func (c *CachedBusinessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	c.invalidate(ctx, id)
	return c.repo.Delete(ctx, id)
}

func (c *CachedBusinessRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := c.redis.Del(ctx, detailKey(id)).Err(); err != nil {
		log.Printf("Failed to delete business cache %s: %v", id, err)
	}
	c.invalidateLists(ctx)
}

func (c *CachedBusinessRepository) invalidateLists(ctx context.Context) {
	iter := c.redis.Scan(ctx, 0, "businesses:list:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.redis.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("Failed to delete list cache %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("Failed to scan list cache keys: %v", err)
	}
}
