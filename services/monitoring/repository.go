package monitoring

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/openroads/trafficmon/internal/pkg/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// MonitoringRepo defines the interface for traffic data access operations
type MonitoringRepo interface {
	// Road segment operations. CreateOrGetSegment is idempotent on the
	// normalized coordinate tuple: it returns the existing row with
	// created=false instead of failing on a duplicate.
	CreateOrGetSegment(ctx context.Context, coords models.SegmentCoordinates, length float64) (*models.RoadSegment, bool, error)
	GetSegment(ctx context.Context, segmentID uuid.UUID) (*models.RoadSegment, error)
	ListSegments(ctx context.Context) ([]*models.RoadSegment, error)
	ListSegmentsWithLatest(ctx context.Context) ([]*models.SegmentWithLatest, error)
	UpdateSegment(ctx context.Context, segment *models.RoadSegment) (*models.RoadSegment, error)
	DeleteSegment(ctx context.Context, segmentID uuid.UUID) error

	// Speed reading operations. CreateOrGetReading is idempotent on
	// (road_segment_id, timestamp); speed is only written on insert.
	CreateOrGetReading(ctx context.Context, segmentID uuid.UUID, timestamp time.Time, speed float64) (*models.SpeedReading, bool, error)
	GetReading(ctx context.Context, readingID uuid.UUID) (*models.SpeedReading, error)
	ListReadings(ctx context.Context, filter models.ReadingFilter) ([]*models.SpeedReading, error)
	LatestReading(ctx context.Context, segmentID uuid.UUID) (*models.SpeedReading, error)
	UpdateReadingSpeed(ctx context.Context, readingID uuid.UUID, speed float64) (*models.SpeedReading, error)
	DeleteReading(ctx context.Context, readingID uuid.UUID) error
}
