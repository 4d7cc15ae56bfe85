// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"places_backend/internal/feature/location/domain/entity"
	"places_backend/internal/feature/location/usecase"
)

// CachingLocationRepository decorates a LocationRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Public list/get reads are cached;
// every write invalidates the affected entries.
type CachingLocationRepository struct {
	inner     usecase.LocationRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingLocationRepositoryがLocationRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.LocationRepository = (*CachingLocationRepository)(nil)

// NewCachingLocationRepository decorates a LocationRepository with Redis caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses "locations".
func NewCachingLocationRepository(rdb *redis.Client, ttl time.Duration, inner usecase.LocationRepository, namespace string) *CachingLocationRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "locations"
	}
	return &CachingLocationRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts a location and invalidates the list cache.
func (c *CachingLocationRepository) Create(ctx context.Context, loc *entity.Location) error {
	if err := c.inner.Create(ctx, loc); err != nil {
		return err
	}
	c.invalidate(ctx, c.listKey())
	return nil
}

// FindAll retrieves all locations, checking cache first then falling back to the database.
func (c *CachingLocationRepository) FindAll(ctx context.Context) ([]entity.Location, error) {
	if c.rdb == nil {
		return c.inner.FindAll(ctx)
	}

	key := c.listKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Location
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID retrieves one location, checking cache first then falling back to the database.
func (c *CachingLocationRepository) FindByID(ctx context.Context, id uint) (*entity.Location, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.idKey(id)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Location
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Update saves a location and invalidates its cache entries.
func (c *CachingLocationRepository) Update(ctx context.Context, loc *entity.Location) error {
	if err := c.inner.Update(ctx, loc); err != nil {
		return err
	}
	c.invalidate(ctx, c.listKey(), c.idKey(loc.ID))
	return nil
}

// Delete removes a location and invalidates its cache entries.
func (c *CachingLocationRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, c.listKey(), c.idKey(id))
	return nil
}

// AddReview inserts a review and invalidates the location's cache entries,
// since the write changes the location's rating aggregates.
func (c *CachingLocationRepository) AddReview(ctx context.Context, review *entity.Review) error {
	if err := c.inner.AddReview(ctx, review); err != nil {
		return err
	}
	c.invalidate(ctx, c.listKey(), c.idKey(review.LocationID), c.reviewsKey(review.LocationID))
	return nil
}

// FindReviews retrieves a location's reviews through the cache.
func (c *CachingLocationRepository) FindReviews(ctx context.Context, locationID uint) ([]entity.Review, error) {
	if c.rdb == nil {
		return c.inner.FindReviews(ctx, locationID)
	}

	key := c.reviewsKey(locationID)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Review
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindReviews(ctx, locationID)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// invalidate deletes cache keys. Best effort: cache deletion failures are ignored.
func (c *CachingLocationRepository) invalidate(ctx context.Context, keys ...string) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, keys...).Err()
}

func (c *CachingLocationRepository) listKey() string {
	return c.namespace + ":all"
}

func (c *CachingLocationRepository) idKey(id uint) string {
	return fmt.Sprintf("%s:id:%s", c.namespace, strconv.FormatUint(uint64(id), 10))
}

func (c *CachingLocationRepository) reviewsKey(id uint) string {
	return fmt.Sprintf("%s:reviews:%s", c.namespace, strconv.FormatUint(uint64(id), 10))
}
