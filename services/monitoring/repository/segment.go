package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openroads/trafficmon/internal/pkg/constants"
	"github.com/openroads/trafficmon/internal/pkg/logger"
	"github.com/openroads/trafficmon/internal/pkg/models"
	"github.com/openroads/trafficmon/services/monitoring/domain"
)

const segmentColumns = `
	s.id, s.start_longitude, s.start_latitude, s.end_longitude, s.end_latitude,
	s.length, s.created_at, s.updated_at,
	(SELECT COUNT(*) FROM speed_readings r WHERE r.road_segment_id = s.id) AS total_readings`

// CreateOrGetSegment inserts a segment keyed on its normalized coordinate
// tuple, or returns the existing row when the tuple is already stored.
// The unique index over the four coordinate columns makes the insert-then-
// select race-free: concurrent callers converge on the committed row.
func (r *MonitoringRepo) CreateOrGetSegment(ctx context.Context, coords models.SegmentCoordinates, length float64) (*models.RoadSegment, bool, error) {
	key := r.keyer.Key(coords)
	if err := key.Validate(); err != nil {
		return nil, false, err
	}
	length = models.RoundMetric(length)
	if err := models.ValidateLength(length); err != nil {
		return nil, false, err
	}

	now := time.Now().UTC()
	segment := models.RoadSegment{
		ID:             uuid.New(),
		StartLongitude: key.StartLongitude,
		StartLatitude:  key.StartLatitude,
		EndLongitude:   key.EndLongitude,
		EndLatitude:    key.EndLatitude,
		Length:         length,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	insertQuery := `
		INSERT INTO road_segments (
			id, start_longitude, start_latitude, end_longitude, end_latitude,
			length, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (start_longitude, start_latitude, end_longitude, end_latitude) DO NOTHING
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, insertQuery,
		segment.ID, segment.StartLongitude, segment.StartLatitude,
		segment.EndLongitude, segment.EndLatitude,
		segment.Length, segment.CreatedAt, segment.UpdatedAt,
	).Scan(&segment.ID, &segment.CreatedAt, &segment.UpdatedAt)

	if err == nil {
		r.invalidateListingCache(ctx)
		return &segment, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to insert road segment: %w", err)
	}

	// Conflict: another row owns this coordinate tuple, fetch it.
	existing, err := r.getSegmentByCoordinates(ctx, key)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *MonitoringRepo) getSegmentByCoordinates(ctx context.Context, key models.SegmentCoordinates) (*models.RoadSegment, error) {
	query := `
		SELECT` + segmentColumns + `
		FROM road_segments s
		WHERE s.start_longitude = $1 AND s.start_latitude = $2
		  AND s.end_longitude = $3 AND s.end_latitude = $4`

	var segment models.RoadSegment
	err := r.db.GetContext(ctx, &segment, query,
		key.StartLongitude, key.StartLatitude, key.EndLongitude, key.EndLatitude)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSegmentNotFound
		}
		return nil, fmt.Errorf("failed to get road segment by coordinates: %w", err)
	}
	return &segment, nil
}

// GetSegment returns a segment by ID with its derived reading count.
func (r *MonitoringRepo) GetSegment(ctx context.Context, segmentID uuid.UUID) (*models.RoadSegment, error) {
	query := `
		SELECT` + segmentColumns + `
		FROM road_segments s
		WHERE s.id = $1`

	var segment models.RoadSegment
	err := r.db.GetContext(ctx, &segment, query, segmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSegmentNotFound
		}
		return nil, fmt.Errorf("failed to get road segment: %w", err)
	}
	return &segment, nil
}

// ListSegments returns all segments ordered by creation time.
func (r *MonitoringRepo) ListSegments(ctx context.Context) ([]*models.RoadSegment, error) {
	query := `
		SELECT` + segmentColumns + `
		FROM road_segments s
		ORDER BY s.created_at ASC`

	segments := []*models.RoadSegment{}
	if err := r.db.SelectContext(ctx, &segments, query); err != nil {
		return nil, fmt.Errorf("failed to list road segments: %w", err)
	}
	return segments, nil
}

// segmentWithLatestRow flattens a segment and its optional latest reading
// for a single scan.
type segmentWithLatestRow struct {
	models.RoadSegment
	ReadingID        *uuid.UUID `db:"reading_id"`
	ReadingSpeed     *float64   `db:"reading_speed"`
	ReadingTimestamp *time.Time `db:"reading_timestamp"`
	ReadingCreatedAt *time.Time `db:"reading_created_at"`
}

// ListSegmentsWithLatest returns every segment paired with its most recent
// reading. Among readings sharing the newest timestamp the one stored last
// wins. Results are served from cache when the listing has not been
// invalidated by a mutation.
func (r *MonitoringRepo) ListSegmentsWithLatest(ctx context.Context) ([]*models.SegmentWithLatest, error) {
	if cached, ok := r.cachedListing(ctx); ok {
		return cached, nil
	}

	query := `
		SELECT` + segmentColumns + `,
			lr.id AS reading_id, lr.average_speed AS reading_speed,
			lr.timestamp AS reading_timestamp, lr.created_at AS reading_created_at
		FROM road_segments s
		LEFT JOIN LATERAL (
			SELECT id, average_speed, timestamp, created_at
			FROM speed_readings
			WHERE road_segment_id = s.id
			ORDER BY timestamp DESC, created_at DESC
			LIMIT 1
		) lr ON true
		ORDER BY s.created_at ASC`

	rows := []segmentWithLatestRow{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list segments with latest reading: %w", err)
	}

	result := make([]*models.SegmentWithLatest, 0, len(rows))
	for _, row := range rows {
		entry := &models.SegmentWithLatest{Segment: row.RoadSegment}
		if row.ReadingID != nil {
			reading := &models.SpeedReading{
				ID:            *row.ReadingID,
				RoadSegmentID: row.RoadSegment.ID,
				AverageSpeed:  *row.ReadingSpeed,
				Timestamp:     *row.ReadingTimestamp,
				CreatedAt:     *row.ReadingCreatedAt,
			}
			reading.Derive()
			entry.Latest = reading
		}
		result = append(result, entry)
	}

	r.storeListing(ctx, result)
	return result, nil
}

// UpdateSegment rewrites a segment's geometry and length.
func (r *MonitoringRepo) UpdateSegment(ctx context.Context, segment *models.RoadSegment) (*models.RoadSegment, error) {
	segment.Normalize()
	if err := segment.Validate(); err != nil {
		return nil, err
	}

	query := `
		UPDATE road_segments
		SET start_longitude = $2, start_latitude = $3,
		    end_longitude = $4, end_latitude = $5,
		    length = $6, updated_at = $7
		WHERE id = $1
		RETURNING created_at, updated_at`

	updatedAt := time.Now().UTC()
	err := r.db.QueryRowContext(ctx, query,
		segment.ID,
		segment.StartLongitude, segment.StartLatitude,
		segment.EndLongitude, segment.EndLatitude,
		segment.Length, updatedAt,
	).Scan(&segment.CreatedAt, &segment.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSegmentNotFound
		}
		return nil, fmt.Errorf("failed to update road segment: %w", err)
	}

	r.invalidateListingCache(ctx)
	return segment, nil
}

// DeleteSegment removes a segment and all of its readings in one
// transaction. The speed_readings FK cascades, so a single DELETE covers
// both tables atomically.
func (r *MonitoringRepo) DeleteSegment(ctx context.Context, segmentID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM road_segments WHERE id = $1`, segmentID)
	if err != nil {
		return fmt.Errorf("failed to delete road segment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrSegmentNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit segment delete: %w", err)
	}

	r.invalidateListingCache(ctx)
	return nil
}

func (r *MonitoringRepo) cachedListing(ctx context.Context) ([]*models.SegmentWithLatest, bool) {
	if r.redisClient == nil {
		return nil, false
	}
	raw, err := r.redisClient.Get(ctx, constants.KeySegmentsWithLatest)
	if err != nil {
		return nil, false
	}
	var listing []*models.SegmentWithLatest
	if err := json.Unmarshal([]byte(raw), &listing); err != nil {
		logger.Warn("Discarding malformed segment listing cache entry", logger.Err(err))
		return nil, false
	}
	return listing, true
}

func (r *MonitoringRepo) storeListing(ctx context.Context, listing []*models.SegmentWithLatest) {
	if r.redisClient == nil {
		return
	}
	raw, err := json.Marshal(listing)
	if err != nil {
		logger.Warn("Failed to marshal segment listing for cache", logger.Err(err))
		return
	}
	if err := r.redisClient.Set(ctx, constants.KeySegmentsWithLatest, raw, constants.TTLSegmentsWithLatest); err != nil {
		logger.Warn("Failed to cache segment listing", logger.Err(err))
	}
}
