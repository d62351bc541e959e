package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	cacheKeyAccommodations = "catalog:accommodations"
	cacheKeyMealPlans      = "catalog:meal_plans"
	cacheKeyActivities     = "catalog:activities"
)

// Service serves catalog reads with an optional Redis read-through cache.
// A nil Redis client disables caching entirely.
type Service struct {
	repo     Repository
	redis    *redis.Client
	cacheTTL time.Duration
}

// NewService creates catalog service
func NewService(repo Repository, redisClient *redis.Client, cacheTTL time.Duration) *Service {
	return &Service{repo: repo, redis: redisClient, cacheTTL: cacheTTL}
}

// Accommodations returns available accommodations.
func (s *Service) Accommodations(ctx context.Context) ([]Accommodation, error) {
	var items []Accommodation
	if s.cacheGet(ctx, cacheKeyAccommodations, &items) {
		return items, nil
	}
	items, err := s.repo.ListAccommodations(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyAccommodations, items)
	return items, nil
}

// MealPlans returns available meal plans.
func (s *Service) MealPlans(ctx context.Context) ([]MealPlan, error) {
	var items []MealPlan
	if s.cacheGet(ctx, cacheKeyMealPlans, &items) {
		return items, nil
	}
	items, err := s.repo.ListMealPlans(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyMealPlans, items)
	return items, nil
}

// Activities returns available activities.
func (s *Service) Activities(ctx context.Context) ([]Activity, error) {
	var items []Activity
	if s.cacheGet(ctx, cacheKeyActivities, &items) {
		return items, nil
	}
	items, err := s.repo.ListActivities(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyActivities, items)
	return items, nil
}

// Snapshot returns the full catalog for price computation. Never cached:
// the booking flow must see current room counts.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	return s.repo.Snapshot(ctx)
}

// Invalidate drops the cached listings. Called after admin catalog edits.
func (s *Service) Invalidate(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, cacheKeyAccommodations, cacheKeyMealPlans, cacheKeyActivities).Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate catalog cache")
	}
}

// cacheGet returns true when the key was present and decoded. Cache
// failures fall through to the repository, never to the caller.
func (s *Service) cacheGet(ctx context.Context, key string, v interface{}) bool {
	if s.redis == nil {
		return false
	}
	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("Catalog cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Catalog cache decode failed")
		return false
	}
	return true
}

func (s *Service) cacheSet(ctx context.Context, key string, v interface{}) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Catalog cache write failed")
	}
}
