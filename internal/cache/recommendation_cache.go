package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sellerkit/restock-go/internal/config"
	"github.com/sellerkit/restock-go/internal/domain"
)

const (
	recommendationKeyPrefix = "restock:recommendations"
	recommendationScanBatch = 100
)

// RecommendationCache stores complete run results keyed by brand and
// policy, so repeated dashboard reads do not re-read the feeds.
type RecommendationCache interface {
	GetResult(ctx context.Context, brand string, params domain.PolicyParams, policy domain.DuplicatePolicy) (*domain.RunResult, bool, error)
	SetResult(ctx context.Context, result *domain.RunResult) error
	InvalidateAll(ctx context.Context) error
}

type redisRecommendationCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopRecommendationCache struct{}

func NewRecommendationCache(cfg config.CacheConfig) (RecommendationCache, error) {
	if !cfg.Enabled {
		return &noopRecommendationCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisRecommendationCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopRecommendationCache() RecommendationCache {
	return &noopRecommendationCache{}
}

func (c *redisRecommendationCache) GetResult(ctx context.Context, brand string, params domain.PolicyParams, policy domain.DuplicatePolicy) (*domain.RunResult, bool, error) {
	key := buildRecommendationKey(brand, params, policy)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var result domain.RunResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, false, fmt.Errorf("decode recommendation cache: %w", err)
	}

	return &result, true, nil
}

func (c *redisRecommendationCache) SetResult(ctx context.Context, result *domain.RunResult) error {
	key := buildRecommendationKey(result.Brand, result.Params, result.DuplicatePolicy)
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode recommendation cache: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisRecommendationCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, recommendationKeyPrefix, recommendationScanBatch)
}

func (n *noopRecommendationCache) GetResult(ctx context.Context, brand string, params domain.PolicyParams, policy domain.DuplicatePolicy) (*domain.RunResult, bool, error) {
	return nil, false, nil
}

func (n *noopRecommendationCache) SetResult(ctx context.Context, result *domain.RunResult) error {
	return nil
}

func (n *noopRecommendationCache) InvalidateAll(ctx context.Context) error {
	return nil
}

func buildRecommendationKey(brand string, params domain.PolicyParams, policy domain.DuplicatePolicy) string {
	raw := fmt.Sprintf("brand=%s|lead=%d|safety=%d|cover=%d|inbound=%d|dup=%s",
		brand,
		params.LeadTimeDays,
		params.SafetyStockDays,
		params.DesiredDaysOfCover,
		params.InboundInventory,
		policy,
	)
	sum := sha1.Sum([]byte(raw))
	return fmt.Sprintf("%s:%s", recommendationKeyPrefix, hex.EncodeToString(sum[:]))
}
