package service

import (
	"context"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sellerkit/restock-go/internal/cache"
	"github.com/sellerkit/restock-go/internal/config"
	"github.com/sellerkit/restock-go/internal/domain"
	"github.com/sellerkit/restock-go/internal/ingest"
	"github.com/sellerkit/restock-go/internal/restock"
)

// RunRequest describes one engine run. SalesPath and InventoryPath
// override the brand-derived defaults when set.
type RunRequest struct {
	Brand           string
	SalesPath       string
	InventoryPath   string
	Params          domain.PolicyParams
	DuplicatePolicy domain.DuplicatePolicy
}

// RestockService orchestrates a full run: read both feeds, aggregate
// velocity, snapshot inventory, decide, rank. Results are cached per
// (brand, params) when a cache is configured.
type RestockService struct {
	dataDir string
	cache   cache.RecommendationCache
}

func NewRestockService(appCfg config.AppConfig, cacheImpl cache.RecommendationCache) *RestockService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopRecommendationCache()
	}
	return &RestockService{dataDir: appCfg.DataDir, cache: cacheImpl}
}

// Run executes the engine for the request. It returns an error only when
// a source is unavailable or the parameters are invalid; a run that
// produces zero recommendations succeeds with an empty slice.
func (s *RestockService) Run(ctx context.Context, req RunRequest) (*domain.RunResult, error) {
	if err := req.Params.Validate(); err != nil {
		return nil, err
	}
	if req.DuplicatePolicy == "" {
		req.DuplicatePolicy = domain.LastWins
	}

	if result, ok, err := s.cache.GetResult(ctx, req.Brand, req.Params, req.DuplicatePolicy); err == nil && ok {
		return result, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("restock: cache get result failed")
	}

	salesPath := req.SalesPath
	if salesPath == "" {
		salesPath = s.brandPath(req.Brand, "sales", "sales.csv")
	}
	inventoryPath := req.InventoryPath
	if inventoryPath == "" {
		inventoryPath = s.brandPath(req.Brand, "inventory", "inventory.csv")
	}

	salesRows, err := ingest.ReadSalesRows(salesPath)
	if err != nil {
		return nil, err
	}

	inventoryRows, err := ingest.ReadInventoryRows(inventoryPath)
	if err != nil {
		return nil, err
	}

	velocity := restock.AggregateSales(salesRows)
	snapshot := restock.BuildSnapshot(inventoryRows, req.DuplicatePolicy)

	engine := restock.NewEngine(req.Params)
	recommendations := engine.Run(ctx, velocity, snapshot)

	result := &domain.RunResult{
		Brand:           req.Brand,
		Params:          req.Params,
		DuplicatePolicy: req.DuplicatePolicy,
		SkusEvaluated:   len(velocity),
		Recommendations: recommendations,
		GeneratedAt:     time.Now().UTC(),
	}

	log.Info().
		Str("brand", req.Brand).
		Int("skus_evaluated", result.SkusEvaluated).
		Int("recommendations", len(recommendations)).
		Msg("restock run completed")

	if err := s.cache.SetResult(ctx, result); err != nil {
		log.Warn().Err(err).Msg("restock: cache set result failed")
	}

	return result, nil
}

// brandPath resolves the reference per-brand feed layout:
// <dataDir>/<brand>/reports/<kind>/<file>.
func (s *RestockService) brandPath(brand, kind, file string) string {
	return filepath.Join(s.dataDir, brand, "reports", kind, file)
}
