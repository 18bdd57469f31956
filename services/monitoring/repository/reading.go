package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openroads/trafficmon/internal/pkg/models"
	"github.com/openroads/trafficmon/services/monitoring/domain"
)

const readingColumns = `id, road_segment_id, average_speed, timestamp, created_at`

// CreateOrGetReading inserts a reading keyed on (road_segment_id,
// timestamp), or returns the existing row when that slot is taken. The
// speed of an existing reading is left untouched.
func (r *MonitoringRepo) CreateOrGetReading(ctx context.Context, segmentID uuid.UUID, timestamp time.Time, speed float64) (*models.SpeedReading, bool, error) {
	if err := models.ValidateSpeed(speed); err != nil {
		return nil, false, err
	}

	reading := models.SpeedReading{
		ID:            uuid.New(),
		RoadSegmentID: segmentID,
		AverageSpeed:  models.RoundMetric(speed),
		Timestamp:     timestamp.UTC(),
		CreatedAt:     time.Now().UTC(),
	}

	insertQuery := `
		INSERT INTO speed_readings (id, road_segment_id, average_speed, timestamp, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (road_segment_id, timestamp) DO NOTHING
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, insertQuery,
		reading.ID, reading.RoadSegmentID, reading.AverageSpeed,
		reading.Timestamp, reading.CreatedAt,
	).Scan(&reading.ID, &reading.CreatedAt)

	if err == nil {
		reading.Derive()
		r.invalidateListingCache(ctx)
		return &reading, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to insert speed reading: %w", err)
	}

	existing, err := r.getReadingBySlot(ctx, segmentID, reading.Timestamp)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *MonitoringRepo) getReadingBySlot(ctx context.Context, segmentID uuid.UUID, timestamp time.Time) (*models.SpeedReading, error) {
	query := `
		SELECT ` + readingColumns + `
		FROM speed_readings
		WHERE road_segment_id = $1 AND timestamp = $2`

	var reading models.SpeedReading
	err := r.db.GetContext(ctx, &reading, query, segmentID, timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReadingNotFound
		}
		return nil, fmt.Errorf("failed to get speed reading by slot: %w", err)
	}
	reading.Derive()
	return &reading, nil
}

// GetReading returns a reading by ID.
func (r *MonitoringRepo) GetReading(ctx context.Context, readingID uuid.UUID) (*models.SpeedReading, error) {
	query := `
		SELECT ` + readingColumns + `
		FROM speed_readings
		WHERE id = $1`

	var reading models.SpeedReading
	err := r.db.GetContext(ctx, &reading, query, readingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReadingNotFound
		}
		return nil, fmt.Errorf("failed to get speed reading: %w", err)
	}
	reading.Derive()
	return &reading, nil
}

// ListReadings returns readings newest first, optionally narrowed to one
// segment and paginated.
func (r *MonitoringRepo) ListReadings(ctx context.Context, filter models.ReadingFilter) ([]*models.SpeedReading, error) {
	query := `
		SELECT ` + readingColumns + `
		FROM speed_readings`
	args := []interface{}{}

	if filter.RoadSegmentID != nil {
		query += ` WHERE road_segment_id = $1`
		args = append(args, *filter.RoadSegmentID)
	}
	query += ` ORDER BY timestamp DESC, created_at DESC`

	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(` OFFSET $%d`, len(args)+1)
		args = append(args, filter.Offset)
	}

	readings := []*models.SpeedReading{}
	if err := r.db.SelectContext(ctx, &readings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list speed readings: %w", err)
	}
	for _, reading := range readings {
		reading.Derive()
	}
	return readings, nil
}

// LatestReading returns a segment's most recent reading, or nil when the
// segment has none. Ties on timestamp resolve to the row stored last.
func (r *MonitoringRepo) LatestReading(ctx context.Context, segmentID uuid.UUID) (*models.SpeedReading, error) {
	query := `
		SELECT ` + readingColumns + `
		FROM speed_readings
		WHERE road_segment_id = $1
		ORDER BY timestamp DESC, created_at DESC
		LIMIT 1`

	var reading models.SpeedReading
	err := r.db.GetContext(ctx, &reading, query, segmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest speed reading: %w", err)
	}
	reading.Derive()
	return &reading, nil
}

// UpdateReadingSpeed rewrites a reading's average speed. The timestamp and
// segment binding are immutable once stored.
func (r *MonitoringRepo) UpdateReadingSpeed(ctx context.Context, readingID uuid.UUID, speed float64) (*models.SpeedReading, error) {
	if err := models.ValidateSpeed(speed); err != nil {
		return nil, err
	}

	query := `
		UPDATE speed_readings
		SET average_speed = $2
		WHERE id = $1
		RETURNING ` + readingColumns

	var reading models.SpeedReading
	err := r.db.GetContext(ctx, &reading, query, readingID, models.RoundMetric(speed))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReadingNotFound
		}
		return nil, fmt.Errorf("failed to update speed reading: %w", err)
	}
	reading.Derive()

	r.invalidateListingCache(ctx)
	return &reading, nil
}

// DeleteReading removes a single reading.
func (r *MonitoringRepo) DeleteReading(ctx context.Context, readingID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM speed_readings WHERE id = $1`, readingID)
	if err != nil {
		return fmt.Errorf("failed to delete speed reading: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrReadingNotFound
	}

	r.invalidateListingCache(ctx)
	return nil
}
