package monitoring

import (
	"context"

	"github.com/openroads/trafficmon/internal/pkg/models"
)

//go:generate mockgen -source=gateways.go -destination=mocks/mock_gateways.go -package=mocks

// MonitoringGW defines the interface for publishing monitoring events
type MonitoringGW interface {
	PublishReadingCreated(ctx context.Context, event models.ReadingCreatedEvent) error
	PublishSegmentDeleted(ctx context.Context, event models.SegmentDeletedEvent) error
}
