package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/openroads/trafficmon/internal/pkg/models"
	"github.com/openroads/trafficmon/internal/utils"
	"github.com/openroads/trafficmon/services/monitoring"
)

// ReadingHandler handles HTTP requests for speed reading operations
type ReadingHandler struct {
	monitoringUC monitoring.MonitoringUC
}

// NewReadingHandler creates a new speed reading HTTP handler
func NewReadingHandler(monitoringUC monitoring.MonitoringUC) *ReadingHandler {
	return &ReadingHandler{
		monitoringUC: monitoringUC,
	}
}

// ReadingRequest is the writable subset of a speed reading.
type ReadingRequest struct {
	RoadSegmentID uuid.UUID `json:"road_segment"`
	AverageSpeed  float64   `json:"average_speed"`
	Timestamp     time.Time `json:"timestamp"`
}

// ReadingUpdateRequest carries the only mutable reading field.
type ReadingUpdateRequest struct {
	AverageSpeed float64 `json:"average_speed"`
}

// ListReadings handles GET /readings with optional road_segment filter and
// limit/offset pagination, newest first.
func (h *ReadingHandler) ListReadings(c echo.Context) error {
	filter := models.ReadingFilter{}

	if segmentParam := c.QueryParam("road_segment"); segmentParam != "" {
		segmentID, err := uuid.Parse(segmentParam)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid road_segment filter")
		}
		filter.RoadSegmentID = &segmentID
	}
	if err := echo.QueryParamsBinder(c).
		Int("limit", &filter.Limit).
		Int("offset", &filter.Offset).
		BindError(); err != nil {
		return utils.BadRequestResponse(c, "Invalid pagination parameters")
	}

	readings, err := h.monitoringUC.ListReadings(c.Request().Context(), filter)
	if err != nil {
		return writeDomainError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Speed readings retrieved successfully", readings)
}

// CreateReading handles POST /readings. Posting the same (segment,
// timestamp) twice returns the original reading instead of a duplicate.
func (h *ReadingHandler) CreateReading(c echo.Context) error {
	if err := authorizeWrite(c); err != nil {
		return writeDomainError(c, err)
	}

	var req ReadingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	reading := &models.SpeedReading{
		RoadSegmentID: req.RoadSegmentID,
		AverageSpeed:  req.AverageSpeed,
		Timestamp:     req.Timestamp,
	}

	stored, created, err := h.monitoringUC.CreateReading(c.Request().Context(), reading)
	if err != nil {
		return writeDomainError(c, err)
	}

	if !created {
		return utils.SuccessResponse(c, http.StatusOK, "Speed reading already exists", stored)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Speed reading created successfully", stored)
}

// GetReading handles GET /readings/:id.
func (h *ReadingHandler) GetReading(c echo.Context) error {
	readingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid reading ID")
	}

	reading, err := h.monitoringUC.GetReading(c.Request().Context(), readingID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Speed reading retrieved successfully", reading)
}

// UpdateReading handles PUT /readings/:id. Only the average speed is
// writable; the segment binding and timestamp are fixed at creation.
func (h *ReadingHandler) UpdateReading(c echo.Context) error {
	if err := authorizeWrite(c); err != nil {
		return writeDomainError(c, err)
	}

	readingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid reading ID")
	}

	var req ReadingUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	reading, err := h.monitoringUC.UpdateReadingSpeed(c.Request().Context(), readingID, req.AverageSpeed)
	if err != nil {
		return writeDomainError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Speed reading updated successfully", reading)
}

// DeleteReading handles DELETE /readings/:id.
func (h *ReadingHandler) DeleteReading(c echo.Context) error {
	if err := authorizeWrite(c); err != nil {
		return writeDomainError(c, err)
	}

	readingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid reading ID")
	}

	if err := h.monitoringUC.DeleteReading(c.Request().Context(), readingID); err != nil {
		return writeDomainError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Speed reading deleted successfully", nil)
}

// LatestReading handles GET /segments/:id/latest-reading.
func (h *ReadingHandler) LatestReading(c echo.Context) error {
	segmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid segment ID")
	}

	reading, err := h.monitoringUC.LatestReading(c.Request().Context(), segmentID)
	if err != nil {
		return writeDomainError(c, err)
	}
	if reading == nil {
		return utils.NotFoundResponse(c, "Segment has no readings")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Latest reading retrieved successfully", reading)
}
