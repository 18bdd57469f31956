package constants

import "time"

// Redis key formats
const (
	// Monitoring Service
	KeySegmentsWithLatest = "monitoring:segments:latest" // Cached segments-with-latest-reading listing
)

// Cache TTLs
const (
	TTLSegmentsWithLatest = 30 * time.Second
)
