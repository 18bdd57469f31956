package models

import (
	"time"

	"github.com/google/uuid"
)

// ReadingCreatedEvent is published whenever a new speed reading is stored,
// either through the API or an import run.
type ReadingCreatedEvent struct {
	ReadingID        uuid.UUID        `json:"reading_id"`
	RoadSegmentID    uuid.UUID        `json:"road_segment_id"`
	AverageSpeed     float64          `json:"average_speed"`
	Timestamp        time.Time        `json:"timestamp"`
	TrafficIntensity TrafficIntensity `json:"traffic_intensity"`
	Source           string           `json:"source"` // "api" or "import"
}

// SegmentDeletedEvent is published when a road segment and its readings are
// removed, so downstream consumers can drop derived state.
type SegmentDeletedEvent struct {
	RoadSegmentID uuid.UUID `json:"road_segment_id"`
	DeletedAt     time.Time `json:"deleted_at"`
}
