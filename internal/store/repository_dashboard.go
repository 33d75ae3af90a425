package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jb131997/gymdesk/internal/logger"
	"github.com/jb131997/gymdesk/models"
)

// dashboardRepository is the PostgreSQL-backed implementation of
// [DashboardRepository]. Metric layouts are stored as jsonb blobs and
// replaced wholesale; the metrics aggregate runs the gymMetrics query.
type dashboardRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDashboardRepository constructs a [DashboardRepository] backed by the
// provided database connection and logger.
func NewDashboardRepository(db *DB, logger *logger.Logger) DashboardRepository {
	logger.Debug().Msg("creating dashboard repository")
	return &dashboardRepository{
		db:     db,
		logger: logger,
	}
}

// GetConfig loads the saved dashboard layout for a gym.
//
// Returns [sql.ErrNoRows] untouched so the service can distinguish "never
// saved" from a real failure and write the default layout.
func (r *dashboardRepository) GetConfig(ctx context.Context, gymID string) (models.DashboardConfig, error) {
	log := logger.FromContext(ctx)

	var (
		cfg      models.DashboardConfig
		today    []byte
		overview []byte
		removed  []byte
	)

	row := r.db.QueryRowContext(ctx, getDashboardConfig, gymID)
	if err := row.Scan(&cfg.GymID, &today, &overview, &removed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DashboardConfig{}, err
		}
		log.Err(err).Str("func", "*dashboardRepository.GetConfig").Msg("error: scanning error")
		return models.DashboardConfig{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	for _, pair := range []struct {
		raw  []byte
		dest *[]models.Metric
	}{
		{today, &cfg.TodayMetrics},
		{overview, &cfg.OverviewMetrics},
		{removed, &cfg.RemovedMetrics},
	} {
		if len(pair.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(pair.raw, pair.dest); err != nil {
			return models.DashboardConfig{}, fmt.Errorf("decode dashboard config: %w", err)
		}
	}

	return cfg, nil
}

// UpsertConfig stores the layout, replacing any previous one for the gym.
func (r *dashboardRepository) UpsertConfig(ctx context.Context, cfg models.DashboardConfig) error {
	log := logger.FromContext(ctx)

	today, err := json.Marshal(cfg.TodayMetrics)
	if err != nil {
		return fmt.Errorf("encode today metrics: %w", err)
	}
	overview, err := json.Marshal(cfg.OverviewMetrics)
	if err != nil {
		return fmt.Errorf("encode overview metrics: %w", err)
	}
	removed, err := json.Marshal(cfg.RemovedMetrics)
	if err != nil {
		return fmt.Errorf("encode removed metrics: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, upsertDashboardConfig, cfg.GymID, today, overview, removed); err != nil {
		log.Err(err).Str("func", "*dashboardRepository.UpsertConfig").Msg("error executing upsert")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// GymMetrics computes the aggregate counters for one gym over rng.
func (r *dashboardRepository) GymMetrics(ctx context.Context, gymID string, rng models.MetricsRange) (models.GymMetrics, error) {
	log := logger.FromContext(ctx)

	var metrics models.GymMetrics
	row := r.db.QueryRowContext(ctx, gymMetrics, gymID, rng.Start, rng.End)
	if err := row.Scan(&metrics.NewMembers, &metrics.ActiveMembers, &metrics.CheckIns, &metrics.Revenue); err != nil {
		log.Err(err).Str("func", "*dashboardRepository.GymMetrics").Msg("error: scanning error")
		return models.GymMetrics{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return metrics, nil
}
