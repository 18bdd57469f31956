package models

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// CoordPrecision is the number of fractional digits kept for coordinates.
// Segment de-duplication relies on coordinates being normalized to this
// precision before they are compared or stored.
const CoordPrecision = 7

// MetricPrecision is the number of fractional digits kept for lengths and speeds.
const MetricPrecision = 2

// SegmentCoordinates is the directed endpoint pair of a road segment.
type SegmentCoordinates struct {
	StartLongitude float64 `json:"start_longitude" db:"start_longitude"`
	StartLatitude  float64 `json:"start_latitude" db:"start_latitude"`
	EndLongitude   float64 `json:"end_longitude" db:"end_longitude"`
	EndLatitude    float64 `json:"end_latitude" db:"end_latitude"`
}

// RoadSegment represents a directed geographic road edge
type RoadSegment struct {
	ID             uuid.UUID `json:"id" db:"id"`
	StartLongitude float64   `json:"start_longitude" db:"start_longitude"`
	StartLatitude  float64   `json:"start_latitude" db:"start_latitude"`
	EndLongitude   float64   `json:"end_longitude" db:"end_longitude"`
	EndLatitude    float64   `json:"end_latitude" db:"end_latitude"`
	Length         float64   `json:"length" db:"length"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`

	// TotalReadings is derived at query time, never stored.
	TotalReadings int `json:"total_readings" db:"total_readings"`
}

// Coordinates returns the segment's endpoint pair.
func (s *RoadSegment) Coordinates() SegmentCoordinates {
	return SegmentCoordinates{
		StartLongitude: s.StartLongitude,
		StartLatitude:  s.StartLatitude,
		EndLongitude:   s.EndLongitude,
		EndLatitude:    s.EndLatitude,
	}
}

// Normalize rounds the segment's fields to their stored precision.
func (s *RoadSegment) Normalize() {
	s.StartLongitude = RoundCoord(s.StartLongitude)
	s.StartLatitude = RoundCoord(s.StartLatitude)
	s.EndLongitude = RoundCoord(s.EndLongitude)
	s.EndLatitude = RoundCoord(s.EndLatitude)
	s.Length = RoundMetric(s.Length)
}

// Validate checks the segment's invariants
func (s *RoadSegment) Validate() error {
	if err := validateLatitude("start_latitude", s.StartLatitude); err != nil {
		return err
	}
	if err := validateLatitude("end_latitude", s.EndLatitude); err != nil {
		return err
	}
	if err := validateLongitude("start_longitude", s.StartLongitude); err != nil {
		return err
	}
	if err := validateLongitude("end_longitude", s.EndLongitude); err != nil {
		return err
	}
	return validatePositiveMetric("length", s.Length)
}

// Normalize rounds the coordinate pair to stored precision.
func (c SegmentCoordinates) Normalize() SegmentCoordinates {
	return SegmentCoordinates{
		StartLongitude: RoundCoord(c.StartLongitude),
		StartLatitude:  RoundCoord(c.StartLatitude),
		EndLongitude:   RoundCoord(c.EndLongitude),
		EndLatitude:    RoundCoord(c.EndLatitude),
	}
}

// Validate checks the coordinate range invariants.
func (c SegmentCoordinates) Validate() error {
	if err := validateLatitude("start_latitude", c.StartLatitude); err != nil {
		return err
	}
	if err := validateLatitude("end_latitude", c.EndLatitude); err != nil {
		return err
	}
	if err := validateLongitude("start_longitude", c.StartLongitude); err != nil {
		return err
	}
	return validateLongitude("end_longitude", c.EndLongitude)
}

// NaN compares false against every bound, so the range checks below must
// reject it explicitly. Infinities fall outside the ranges on their own.
func validateLatitude(field string, v float64) error {
	if math.IsNaN(v) || v < -90 || v > 90 {
		return &ValidationError{Field: field, Message: "latitude must be between -90 and 90"}
	}
	return nil
}

func validateLongitude(field string, v float64) error {
	if math.IsNaN(v) || v < -180 || v > 180 {
		return &ValidationError{Field: field, Message: "longitude must be between -180 and 180"}
	}
	return nil
}

// ValidateLength checks that a standalone length value is positive and finite.
func ValidateLength(v float64) error {
	return validatePositiveMetric("length", v)
}

func validatePositiveMetric(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &ValidationError{Field: field, Message: "must be a positive finite number"}
	}
	return nil
}

// RoundCoord rounds a coordinate to CoordPrecision fractional digits.
func RoundCoord(v float64) float64 {
	return roundTo(v, CoordPrecision)
}

// RoundMetric rounds a length or speed to MetricPrecision fractional digits.
func RoundMetric(v float64) float64 {
	return roundTo(v, MetricPrecision)
}

func roundTo(v float64, digits int) float64 {
	pow := math.Pow(10, float64(digits))
	return math.Round(v*pow) / pow
}

// ValidationError indicates a domain invariant violation on a field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
