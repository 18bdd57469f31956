package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/openroads/trafficmon/internal/pkg/constants"
	"github.com/openroads/trafficmon/internal/pkg/logger"
	"github.com/openroads/trafficmon/internal/pkg/models"
)

// CreateReading stores a speed reading for a segment, or returns the
// existing one when the (segment, timestamp) slot is already taken. The
// segment must exist. New readings are announced on the event bus.
func (uc *MonitoringUC) CreateReading(ctx context.Context, reading *models.SpeedReading) (*models.SpeedReading, bool, error) {
	if reading.Timestamp.IsZero() {
		reading.Timestamp = time.Now().UTC()
	}
	reading.Normalize()
	if err := reading.Validate(); err != nil {
		return nil, false, err
	}

	// Surface a segment-not-found before touching the readings table
	if _, err := uc.monitoringRepo.GetSegment(ctx, reading.RoadSegmentID); err != nil {
		return nil, false, err
	}

	stored, created, err := uc.monitoringRepo.CreateOrGetReading(ctx, reading.RoadSegmentID, reading.Timestamp, reading.AverageSpeed)
	if err != nil {
		return nil, false, err
	}

	if created {
		uc.publishReadingCreated(ctx, stored, constants.SourceAPI)
	}
	return stored, created, nil
}

// GetReading returns a reading by ID.
func (uc *MonitoringUC) GetReading(ctx context.Context, readingID uuid.UUID) (*models.SpeedReading, error) {
	return uc.monitoringRepo.GetReading(ctx, readingID)
}

// ListReadings returns readings newest first, optionally narrowed to one
// segment and paginated.
func (uc *MonitoringUC) ListReadings(ctx context.Context, filter models.ReadingFilter) ([]*models.SpeedReading, error) {
	return uc.monitoringRepo.ListReadings(ctx, filter)
}

// UpdateReadingSpeed rewrites a reading's average speed.
func (uc *MonitoringUC) UpdateReadingSpeed(ctx context.Context, readingID uuid.UUID, speed float64) (*models.SpeedReading, error) {
	if err := models.ValidateSpeed(speed); err != nil {
		return nil, err
	}
	return uc.monitoringRepo.UpdateReadingSpeed(ctx, readingID, models.RoundMetric(speed))
}

// DeleteReading removes a single reading.
func (uc *MonitoringUC) DeleteReading(ctx context.Context, readingID uuid.UUID) error {
	return uc.monitoringRepo.DeleteReading(ctx, readingID)
}

// LatestReading returns a segment's most recent reading, or nil when the
// segment has none yet.
func (uc *MonitoringUC) LatestReading(ctx context.Context, segmentID uuid.UUID) (*models.SpeedReading, error) {
	if _, err := uc.monitoringRepo.GetSegment(ctx, segmentID); err != nil {
		return nil, err
	}
	return uc.monitoringRepo.LatestReading(ctx, segmentID)
}

// publishReadingCreated announces a stored reading. Event delivery is best
// effort and never fails the write that produced it.
func (uc *MonitoringUC) publishReadingCreated(ctx context.Context, reading *models.SpeedReading, source string) {
	event := models.ReadingCreatedEvent{
		ReadingID:        reading.ID,
		RoadSegmentID:    reading.RoadSegmentID,
		AverageSpeed:     reading.AverageSpeed,
		Timestamp:        reading.Timestamp,
		TrafficIntensity: reading.Intensity(),
		Source:           source,
	}
	if err := uc.monitoringGW.PublishReadingCreated(ctx, event); err != nil {
		logger.Warn("Failed to publish reading created event",
			logger.String("reading_id", reading.ID.String()),
			logger.Err(err),
		)
	}
}
