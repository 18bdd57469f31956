package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/openroads/trafficmon/internal/pkg/middleware"
)

// RegisterRoutes registers all HTTP routes. Every route resolves the
// caller's principal from the Authorization header; mutating handlers then
// gate on it, reads stay open.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	principal := middleware.PrincipalMiddleware(h.cfg.JWT)

	segments := e.Group("/segments", principal)
	segments.GET("", h.segmentHTTP.ListSegments)
	segments.POST("", h.segmentHTTP.CreateSegment)
	segments.GET("/:id", h.segmentHTTP.GetSegment)
	segments.PUT("/:id", h.segmentHTTP.UpdateSegment)
	segments.DELETE("/:id", h.segmentHTTP.DeleteSegment)
	segments.GET("/:id/latest-reading", h.readingHTTP.LatestReading)

	readings := e.Group("/readings", principal)
	readings.GET("", h.readingHTTP.ListReadings)
	readings.POST("", h.readingHTTP.CreateReading)
	readings.GET("/:id", h.readingHTTP.GetReading)
	readings.PUT("/:id", h.readingHTTP.UpdateReading)
	readings.DELETE("/:id", h.readingHTTP.DeleteReading)
}
