package repository

import (
	"github.com/mmcloughlin/geohash"

	"github.com/openroads/trafficmon/internal/pkg/models"
)

// SegmentKeyer normalizes a coordinate tuple into the canonical form used
// for segment de-duplication. Two tuples that normalize to the same value
// refer to the same segment.
type SegmentKeyer interface {
	Key(coords models.SegmentCoordinates) models.SegmentCoordinates
}

// ExactKeyer keys segments on coordinates rounded to stored precision.
// Tuples differing past the seventh fractional digit collapse to one
// segment; anything coarser stays distinct.
type ExactKeyer struct{}

func (ExactKeyer) Key(coords models.SegmentCoordinates) models.SegmentCoordinates {
	return coords.Normalize()
}

// GeohashKeyer snaps each endpoint to the center of its geohash cell, so
// near-duplicate geometry within a cell collapses to one segment.
type GeohashKeyer struct {
	// Chars is the geohash precision in characters. 9 chars keeps cells
	// under ~5m, tight enough that distinct road edges stay apart.
	Chars uint
}

func (k GeohashKeyer) Key(coords models.SegmentCoordinates) models.SegmentCoordinates {
	chars := k.Chars
	if chars == 0 {
		chars = 9
	}
	startLat, startLng := snapToCell(coords.StartLatitude, coords.StartLongitude, chars)
	endLat, endLng := snapToCell(coords.EndLatitude, coords.EndLongitude, chars)
	return models.SegmentCoordinates{
		StartLongitude: models.RoundCoord(startLng),
		StartLatitude:  models.RoundCoord(startLat),
		EndLongitude:   models.RoundCoord(endLng),
		EndLatitude:    models.RoundCoord(endLat),
	}
}

func snapToCell(lat, lng float64, chars uint) (float64, float64) {
	hash := geohash.EncodeWithPrecision(lat, lng, chars)
	return geohash.DecodeCenter(hash)
}
