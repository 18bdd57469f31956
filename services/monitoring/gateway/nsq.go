package gateway

import (
	"context"

	"github.com/openroads/trafficmon/internal/pkg/constants"
	"github.com/openroads/trafficmon/internal/pkg/logger"
	"github.com/openroads/trafficmon/internal/pkg/models"
)

// PublishReadingCreated announces a stored speed reading on the event bus.
func (g *MonitoringGW) PublishReadingCreated(ctx context.Context, event models.ReadingCreatedEvent) error {
	if g.producer == nil {
		logger.Debug("Event publishing disabled, dropping reading created event",
			logger.String("reading_id", event.ReadingID.String()))
		return nil
	}
	return g.producer.Publish(constants.TopicReadingCreated, event)
}

// PublishSegmentDeleted announces a segment removal on the event bus.
func (g *MonitoringGW) PublishSegmentDeleted(ctx context.Context, event models.SegmentDeletedEvent) error {
	if g.producer == nil {
		logger.Debug("Event publishing disabled, dropping segment deleted event",
			logger.String("segment_id", event.RoadSegmentID.String()))
		return nil
	}
	return g.producer.Publish(constants.TopicSegmentDeleted, event)
}
