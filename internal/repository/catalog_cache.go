package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/studybuddy-app/classroom-api/internal/models"
)

const catalogCacheKey = "classrooms:catalog"

// CatalogCache keeps the system-wide classroom catalog in Redis so the
// discovery endpoint does not hit Postgres on every request.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache constructs the cache with a fixed TTL.
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl}
}

// Get returns the cached catalog, or (nil, nil) on a miss. A cached empty
// catalog comes back as a non-nil empty slice, so callers can tell "nothing
// cached" from "cached nothing".
func (c *CatalogCache) Get(ctx context.Context) ([]models.Classroom, error) {
	payload, err := c.client.Get(ctx, catalogCacheKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get catalog cache: %w", err)
	}
	classrooms, err := decodeCatalog(payload)
	if err != nil {
		return nil, fmt.Errorf("decode catalog cache: %w", err)
	}
	return classrooms, nil
}

// Set stores the catalog snapshot.
func (c *CatalogCache) Set(ctx context.Context, classrooms []models.Classroom) error {
	payload, err := encodeCatalog(classrooms)
	if err != nil {
		return fmt.Errorf("encode catalog cache: %w", err)
	}
	if err := c.client.Set(ctx, catalogCacheKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("set catalog cache: %w", err)
	}
	return nil
}

// encodeCatalog marshals a nil snapshot as an empty JSON array so that an
// empty catalog survives the round trip without degrading into a miss.
func encodeCatalog(classrooms []models.Classroom) ([]byte, error) {
	if classrooms == nil {
		classrooms = []models.Classroom{}
	}
	return json.Marshal(classrooms)
}

func decodeCatalog(payload []byte) ([]models.Classroom, error) {
	var classrooms []models.Classroom
	if err := json.Unmarshal(payload, &classrooms); err != nil {
		return nil, err
	}
	if classrooms == nil {
		classrooms = []models.Classroom{}
	}
	return classrooms, nil
}

// Invalidate drops the snapshot after a classroom is created.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogCacheKey).Err(); err != nil {
		return fmt.Errorf("invalidate catalog cache: %w", err)
	}
	return nil
}
