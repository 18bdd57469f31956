package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/openroads/trafficmon/internal/pkg/accessgate"
	"github.com/openroads/trafficmon/internal/pkg/middleware"
	"github.com/openroads/trafficmon/internal/pkg/models"
	"github.com/openroads/trafficmon/internal/utils"
	"github.com/openroads/trafficmon/services/monitoring/domain"
)

// authorizeWrite denies the request unless the caller's principal may
// mutate the store. Reads never come through here.
func authorizeWrite(c echo.Context) error {
	return accessgate.Authorize(accessgate.OpWrite, middleware.PrincipalFrom(c))
}

// writeDomainError maps service errors onto HTTP status codes. The mapping
// is deliberately thin: validation is the caller's fault, missing rows are
// 404, everything else is a server fault.
func writeDomainError(c echo.Context, err error) error {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		return utils.BadRequestResponse(c, vErr.Error())
	case errors.Is(err, domain.ErrSegmentNotFound),
		errors.Is(err, domain.ErrReadingNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, accessgate.ErrWriteForbidden):
		return utils.ForbiddenResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}
