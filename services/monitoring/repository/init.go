package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/openroads/trafficmon/internal/pkg/constants"
	"github.com/openroads/trafficmon/internal/pkg/database"
	"github.com/openroads/trafficmon/internal/pkg/logger"
	"github.com/openroads/trafficmon/internal/pkg/models"
)

// MonitoringRepo implements the monitoring repository interface
type MonitoringRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
	keyer       SegmentKeyer
}

// NewMonitoringRepository creates a new monitoring repository
func NewMonitoringRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
	keyer SegmentKeyer,
) *MonitoringRepo {
	if keyer == nil {
		keyer = ExactKeyer{}
	}
	return &MonitoringRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
		keyer:       keyer,
	}
}

// invalidateListingCache drops the cached segments-with-latest listing.
// Called after every mutation; a cold cache is repopulated on the next read.
func (r *MonitoringRepo) invalidateListingCache(ctx context.Context) {
	if r.redisClient == nil {
		return
	}
	if err := r.redisClient.Delete(ctx, constants.KeySegmentsWithLatest); err != nil {
		logger.Warn("Failed to invalidate segment listing cache", logger.Err(err))
	}
}
