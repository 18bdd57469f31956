package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		data       interface{}
	}{
		{
			name:       "Success with map data",
			statusCode: http.StatusCreated,
			message:    "Resource created",
			data:       map[string]interface{}{"id": "123"},
		},
		{
			name:       "Success with nil data",
			statusCode: http.StatusOK,
			message:    "Success",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			err := SuccessResponse(c, tt.statusCode, tt.message, tt.data)
			assert.NoError(t, err)
			assert.Equal(t, tt.statusCode, rec.Code)

			var response Response
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.True(t, response.Success)
			assert.Equal(t, tt.message, response.Message)
			assert.Equal(t, tt.data, response.Data)
		})
	}
}

func TestErrorResponseHandler(t *testing.T) {
	c, rec := newTestContext()

	err := ErrorResponseHandler(c, http.StatusBadRequest, "Invalid request")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.False(t, response.Success)
	assert.Equal(t, "Invalid request", response.Error)
	assert.Equal(t, http.StatusBadRequest, response.Code)
}

func TestErrorHelperDefaults(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(echo.Context, string) error
		code     int
		fallback string
	}{
		{name: "unauthorized", fn: UnauthorizedResponse, code: http.StatusUnauthorized, fallback: "Unauthorized"},
		{name: "forbidden", fn: ForbiddenResponse, code: http.StatusForbidden, fallback: "Forbidden"},
		{name: "not found", fn: NotFoundResponse, code: http.StatusNotFound, fallback: "Resource not found"},
		{name: "internal error", fn: InternalServerErrorResponse, code: http.StatusInternalServerError, fallback: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Empty message falls back to the default
			c, rec := newTestContext()
			assert.NoError(t, tt.fn(c, ""))
			assert.Equal(t, tt.code, rec.Code)

			var response ErrorResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, tt.fallback, response.Error)

			// A custom message is passed through
			c, rec = newTestContext()
			assert.NoError(t, tt.fn(c, "custom message"))

			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, "custom message", response.Error)
		})
	}
}

func TestBadRequestResponse(t *testing.T) {
	c, rec := newTestContext()

	err := BadRequestResponse(c, "Invalid input")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Invalid input", response.Error)
}
