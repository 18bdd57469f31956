package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/openroads/trafficmon/internal/pkg/models"
	"github.com/openroads/trafficmon/internal/utils"
	"github.com/openroads/trafficmon/services/monitoring"
)

// SegmentHandler handles HTTP requests for road segment operations
type SegmentHandler struct {
	monitoringUC monitoring.MonitoringUC
}

// NewSegmentHandler creates a new road segment HTTP handler
func NewSegmentHandler(monitoringUC monitoring.MonitoringUC) *SegmentHandler {
	return &SegmentHandler{
		monitoringUC: monitoringUC,
	}
}

// SegmentRequest is the writable subset of a road segment. Derived and
// bookkeeping fields are ignored on input.
type SegmentRequest struct {
	StartLongitude float64 `json:"start_longitude"`
	StartLatitude  float64 `json:"start_latitude"`
	EndLongitude   float64 `json:"end_longitude"`
	EndLatitude    float64 `json:"end_latitude"`
	Length         float64 `json:"length"`
}

func (r *SegmentRequest) toModel() *models.RoadSegment {
	return &models.RoadSegment{
		StartLongitude: r.StartLongitude,
		StartLatitude:  r.StartLatitude,
		EndLongitude:   r.EndLongitude,
		EndLatitude:    r.EndLatitude,
		Length:         r.Length,
	}
}

// ListSegments handles GET /segments with an optional traffic_intensity
// filter on each segment's latest reading.
func (h *SegmentHandler) ListSegments(c echo.Context) error {
	intensity := c.QueryParam("traffic_intensity")

	segments, err := h.monitoringUC.ListSegments(c.Request().Context(), intensity)
	if err != nil {
		return writeDomainError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Road segments retrieved successfully", segments)
}

// CreateSegment handles POST /segments. The same coordinate tuple posted
// twice returns the original segment instead of a duplicate.
func (h *SegmentHandler) CreateSegment(c echo.Context) error {
	if err := authorizeWrite(c); err != nil {
		return writeDomainError(c, err)
	}

	var req SegmentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	segment, created, err := h.monitoringUC.CreateSegment(c.Request().Context(), req.toModel())
	if err != nil {
		return writeDomainError(c, err)
	}

	if !created {
		return utils.SuccessResponse(c, http.StatusOK, "Road segment already exists", segment)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Road segment created successfully", segment)
}

// GetSegment handles GET /segments/:id.
func (h *SegmentHandler) GetSegment(c echo.Context) error {
	segmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid segment ID")
	}

	segment, err := h.monitoringUC.GetSegment(c.Request().Context(), segmentID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Road segment retrieved successfully", segment)
}

// UpdateSegment handles PUT /segments/:id.
func (h *SegmentHandler) UpdateSegment(c echo.Context) error {
	if err := authorizeWrite(c); err != nil {
		return writeDomainError(c, err)
	}

	segmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid segment ID")
	}

	var req SegmentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	segment := req.toModel()
	segment.ID = segmentID

	updated, err := h.monitoringUC.UpdateSegment(c.Request().Context(), segment)
	if err != nil {
		return writeDomainError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Road segment updated successfully", updated)
}

// DeleteSegment handles DELETE /segments/:id. The segment's readings go
// with it.
func (h *SegmentHandler) DeleteSegment(c echo.Context) error {
	if err := authorizeWrite(c); err != nil {
		return writeDomainError(c, err)
	}

	segmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid segment ID")
	}

	if err := h.monitoringUC.DeleteSegment(c.Request().Context(), segmentID); err != nil {
		return writeDomainError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Road segment deleted successfully", nil)
}
