package models

import (
	"time"

	"github.com/google/uuid"
)

// TrafficIntensity is the congestion band derived from an average speed
type TrafficIntensity string

const (
	IntensityHigh   TrafficIntensity = "high"
	IntensityMedium TrafficIntensity = "medium"
	IntensityLow    TrafficIntensity = "low"
)

// Classification thresholds in km/h. A boundary value belongs to the
// slower band: exactly 20 is high, exactly 50 is medium.
const (
	HighSpeedThreshold   = 20.0
	MediumSpeedThreshold = 50.0
)

// Classify maps an average speed to its traffic intensity band.
func Classify(speed float64) TrafficIntensity {
	switch {
	case speed <= HighSpeedThreshold:
		return IntensityHigh
	case speed <= MediumSpeedThreshold:
		return IntensityMedium
	default:
		return IntensityLow
	}
}

// ParseIntensity returns the band for a label, or the zero value when the
// label is not one of the three bands. The zero value never matches a
// classified reading, so unknown filter labels apply no constraint.
func ParseIntensity(label string) TrafficIntensity {
	switch TrafficIntensity(label) {
	case IntensityHigh, IntensityMedium, IntensityLow:
		return TrafficIntensity(label)
	default:
		return ""
	}
}

// SpeedReading represents one timestamped speed observation on a segment
type SpeedReading struct {
	ID            uuid.UUID `json:"id" db:"id"`
	RoadSegmentID uuid.UUID `json:"road_segment" db:"road_segment_id"`
	AverageSpeed  float64   `json:"average_speed" db:"average_speed"`
	Timestamp     time.Time `json:"timestamp" db:"timestamp"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`

	// TrafficIntensity is derived from AverageSpeed on read, never stored.
	TrafficIntensity TrafficIntensity `json:"traffic_intensity" db:"-"`
}

// Intensity returns the reading's derived traffic intensity band.
func (r *SpeedReading) Intensity() TrafficIntensity {
	return Classify(r.AverageSpeed)
}

// Derive recomputes the reading's derived fields.
func (r *SpeedReading) Derive() {
	r.TrafficIntensity = r.Intensity()
}

// Normalize rounds the reading's speed to stored precision.
func (r *SpeedReading) Normalize() {
	r.AverageSpeed = RoundMetric(r.AverageSpeed)
}

// ValidateSpeed checks that a standalone speed value is positive and finite.
func ValidateSpeed(v float64) error {
	return validatePositiveMetric("average_speed", v)
}

// Validate checks the reading's invariants
func (r *SpeedReading) Validate() error {
	if r.RoadSegmentID == uuid.Nil {
		return &ValidationError{Field: "road_segment", Message: "road segment is required"}
	}
	if err := validatePositiveMetric("average_speed", r.AverageSpeed); err != nil {
		return err
	}
	if r.Timestamp.After(time.Now()) {
		return &ValidationError{Field: "timestamp", Message: "timestamp cannot be in the future"}
	}
	return nil
}

// SegmentWithLatest pairs a segment with its most recent reading.
// Latest is nil for segments without readings.
type SegmentWithLatest struct {
	Segment RoadSegment
	Latest  *SpeedReading
}

// ReadingFilter narrows reading list queries. A nil RoadSegmentID means all
// segments; Limit <= 0 means no limit.
type ReadingFilter struct {
	RoadSegmentID *uuid.UUID
	Limit         int
	Offset        int
}
