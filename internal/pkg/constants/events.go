package constants

// NSQ topics
const (
	// Monitoring Service
	TopicReadingCreated = "reading.created"
	TopicSegmentDeleted = "segment.deleted"
)

// Event sources
const (
	SourceAPI    = "api"
	SourceImport = "import"
)
