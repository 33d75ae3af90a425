package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jb131997/gymdesk/internal/cache"
	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/internal/store"
	"github.com/jb131997/gymdesk/models"
)

// dashboardService is the concrete implementation of DashboardService.
// Layouts are stored wholesale; a gym that never saved one gets the default
// card set. The metrics aggregate is served through a short-TTL Redis cache
// when one is configured.
type dashboardService struct {
	dashboardRepository store.DashboardRepository
	metricsCache        *cache.MetricsCache
	logger              *logger.Logger
}

// NewDashboardService constructs a DashboardService over the given
// repository. metricsCache may be nil (caching disabled).
func NewDashboardService(dashboardRepository store.DashboardRepository, metricsCache *cache.MetricsCache, logger *logger.Logger) DashboardService {
	logger.Debug().Msg("creating dashboard service")
	return &dashboardService{
		dashboardRepository: dashboardRepository,
		metricsCache:        metricsCache,
		logger:              logger,
	}
}

// GetConfig loads the gym's dashboard layout, falling back to the default
// card set when none has been saved yet.
func (s *dashboardService) GetConfig(ctx context.Context, gymID string) (models.DashboardConfig, error) {
	log := logger.FromContext(ctx)

	cfg, err := s.dashboardRepository.GetConfig(ctx, gymID)
	if errors.Is(err, sql.ErrNoRows) {
		return defaultDashboardConfig(gymID), nil
	}
	if err != nil {
		log.Err(err).Str("gymID", gymID).Msg("dashboard config lookup failed")
		return models.DashboardConfig{}, fmt.Errorf("dashboard config lookup failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig replaces the gym's stored layout.
func (s *dashboardService) SaveConfig(ctx context.Context, cfg models.DashboardConfig) error {
	log := logger.FromContext(ctx)

	if cfg.GymID == "" {
		return ErrInvalidDataProvided
	}

	if err := s.dashboardRepository.UpsertConfig(ctx, cfg); err != nil {
		log.Err(err).Str("gymID", cfg.GymID).Msg("dashboard config save ended with error")
		return fmt.Errorf("dashboard config save ended with error: %w", err)
	}

	return nil
}

// GetGymMetrics computes the aggregate for the range, reading through the
// metrics cache when one is configured.
func (s *dashboardService) GetGymMetrics(ctx context.Context, gymID string, rng models.MetricsRange) (models.GymMetrics, error) {
	log := logger.FromContext(ctx)

	if !rng.End.After(rng.Start) {
		return models.GymMetrics{}, ErrInvalidDataProvided
	}

	if metrics, err := s.metricsCache.Get(ctx, gymID, rng); err == nil {
		return metrics, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.Err(err).Str("gymID", gymID).Msg("metrics cache read failed, falling back to database")
	}

	metrics, err := s.dashboardRepository.GymMetrics(ctx, gymID, rng)
	if err != nil {
		log.Err(err).Str("gymID", gymID).Msg("metrics aggregation failed")
		return models.GymMetrics{}, fmt.Errorf("metrics aggregation failed: %w", err)
	}

	s.metricsCache.Set(ctx, gymID, rng, metrics)

	return metrics, nil
}

// defaultDashboardConfig is the card set a gym sees before customising
// anything: the four aggregate counters in the today row.
func defaultDashboardConfig(gymID string) models.DashboardConfig {
	return models.DashboardConfig{
		GymID: gymID,
		TodayMetrics: []models.Metric{
			{ID: "new_members", Title: "New Members", Value: 0, Color: "blue"},
			{ID: "check_ins", Title: "Check-ins", Value: 0, Color: "green"},
			{ID: "revenue", Title: "Revenue", Value: 0, Color: "purple"},
		},
		OverviewMetrics: []models.Metric{
			{ID: "active_members", Title: "Active Members", Value: 0, Color: "orange"},
		},
		RemovedMetrics: []models.Metric{},
	}
}
