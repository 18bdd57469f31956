package handler

import (
	"github.com/openroads/trafficmon/internal/pkg/models"
	"github.com/openroads/trafficmon/services/monitoring"
	httpHandler "github.com/openroads/trafficmon/services/monitoring/handler/http"
)

// Handler combines all handlers for the monitoring service
type Handler struct {
	segmentHTTP *httpHandler.SegmentHandler
	readingHTTP *httpHandler.ReadingHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(monitoringUC monitoring.MonitoringUC, cfg *models.Config) *Handler {
	return &Handler{
		segmentHTTP: httpHandler.NewSegmentHandler(monitoringUC),
		readingHTTP: httpHandler.NewReadingHandler(monitoringUC),
		cfg:         cfg,
	}
}
