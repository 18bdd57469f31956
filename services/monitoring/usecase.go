package monitoring

import (
	"context"

	"github.com/google/uuid"

	"github.com/openroads/trafficmon/internal/pkg/models"
)

//go:generate mockgen -source=usecase.go -destination=mocks/mock_usecase.go -package=mocks

// MonitoringUC defines the interface for traffic monitoring business logic
type MonitoringUC interface {
	// Road segment operations
	CreateSegment(ctx context.Context, segment *models.RoadSegment) (*models.RoadSegment, bool, error)
	GetSegment(ctx context.Context, segmentID uuid.UUID) (*models.RoadSegment, error)
	ListSegments(ctx context.Context, intensityLabel string) ([]*models.RoadSegment, error)
	UpdateSegment(ctx context.Context, segment *models.RoadSegment) (*models.RoadSegment, error)
	DeleteSegment(ctx context.Context, segmentID uuid.UUID) error

	// Speed reading operations
	CreateReading(ctx context.Context, reading *models.SpeedReading) (*models.SpeedReading, bool, error)
	GetReading(ctx context.Context, readingID uuid.UUID) (*models.SpeedReading, error)
	ListReadings(ctx context.Context, filter models.ReadingFilter) ([]*models.SpeedReading, error)
	UpdateReadingSpeed(ctx context.Context, readingID uuid.UUID, speed float64) (*models.SpeedReading, error)
	DeleteReading(ctx context.Context, readingID uuid.UUID) error

	// Aggregation operations
	LatestReading(ctx context.Context, segmentID uuid.UUID) (*models.SpeedReading, error)
}
