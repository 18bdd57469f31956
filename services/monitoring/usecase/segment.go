package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/openroads/trafficmon/internal/pkg/logger"
	"github.com/openroads/trafficmon/internal/pkg/models"
)

// CreateSegment stores a road segment, or returns the existing one when the
// same coordinate tuple is already registered.
func (uc *MonitoringUC) CreateSegment(ctx context.Context, segment *models.RoadSegment) (*models.RoadSegment, bool, error) {
	segment.Normalize()
	if err := segment.Validate(); err != nil {
		return nil, false, err
	}

	stored, created, err := uc.monitoringRepo.CreateOrGetSegment(ctx, segment.Coordinates(), segment.Length)
	if err != nil {
		return nil, false, err
	}

	if created {
		logger.Info("Road segment created",
			logger.String("segment_id", stored.ID.String()),
			logger.Float64("length", stored.Length),
		)
	}
	return stored, created, nil
}

// GetSegment returns a segment by ID.
func (uc *MonitoringUC) GetSegment(ctx context.Context, segmentID uuid.UUID) (*models.RoadSegment, error) {
	return uc.monitoringRepo.GetSegment(ctx, segmentID)
}

// ListSegments returns all segments, optionally narrowed to those whose
// latest reading classifies into the given intensity band. An empty or
// unrecognized label applies no constraint. Segments without readings never
// match a band filter.
func (uc *MonitoringUC) ListSegments(ctx context.Context, intensityLabel string) ([]*models.RoadSegment, error) {
	band := models.ParseIntensity(intensityLabel)
	if band == "" {
		return uc.monitoringRepo.ListSegments(ctx)
	}

	withLatest, err := uc.monitoringRepo.ListSegmentsWithLatest(ctx)
	if err != nil {
		return nil, err
	}

	segments := []*models.RoadSegment{}
	for _, entry := range withLatest {
		if entry.Latest == nil {
			continue
		}
		if models.Classify(entry.Latest.AverageSpeed) != band {
			continue
		}
		segment := entry.Segment
		segments = append(segments, &segment)
	}
	return segments, nil
}

// UpdateSegment rewrites a segment's geometry and length.
func (uc *MonitoringUC) UpdateSegment(ctx context.Context, segment *models.RoadSegment) (*models.RoadSegment, error) {
	return uc.monitoringRepo.UpdateSegment(ctx, segment)
}

// DeleteSegment removes a segment together with all of its readings and
// announces the removal. A publish failure never undoes the delete.
func (uc *MonitoringUC) DeleteSegment(ctx context.Context, segmentID uuid.UUID) error {
	if err := uc.monitoringRepo.DeleteSegment(ctx, segmentID); err != nil {
		return err
	}

	event := models.SegmentDeletedEvent{
		RoadSegmentID: segmentID,
		DeletedAt:     time.Now().UTC(),
	}
	if err := uc.monitoringGW.PublishSegmentDeleted(ctx, event); err != nil {
		logger.Warn("Failed to publish segment deleted event",
			logger.String("segment_id", segmentID.String()),
			logger.Err(err),
		)
	}
	return nil
}
