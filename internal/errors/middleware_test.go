package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performRequest(t *testing.T, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Use(Middleware())
	e.GET("/test", handler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestMiddlewarePassesThroughSuccess(t *testing.T) {
	rec := performRequest(t, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddlewareRendersValidationError(t *testing.T) {
	rec := performRequest(t, func(c echo.Context) error {
		return ValidationError("year must be between 1920 and 1991").WithContext("year", 1900)
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "year must be between 1920 and 1991", resp.Error)
	assert.Equal(t, TypeValidation, resp.Type)
	assert.Equal(t, float64(1900), resp.Context["year"])
}

func TestMiddlewareWrapsPlainErrors(t *testing.T) {
	rec := performRequest(t, func(c echo.Context) error {
		return assert.AnError
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, TypeInternal, resp.Type)
	assert.Equal(t, "internal server error", resp.Error)
}

func TestMiddlewareLeavesEchoHTTPErrorsAlone(t *testing.T) {
	rec := performRequest(t, func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "teapot")
	})

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestTypeForStatus(t *testing.T) {
	tests := []struct {
		code int
		want ErrorType
	}{
		{http.StatusNotFound, TypeNotFound},
		{http.StatusBadRequest, TypeValidation},
		{http.StatusUnprocessableEntity, TypeValidation},
		{http.StatusMethodNotAllowed, TypeValidation},
		{http.StatusBadGateway, TypeExternal},
		{http.StatusServiceUnavailable, TypeExternal},
		{http.StatusGatewayTimeout, TypeExternal},
		{http.StatusInternalServerError, TypeInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, typeForStatus(tt.code), "status %d", tt.code)
	}
}

func TestMiddlewareCountsRoutingErrorsByStatus(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())

	notFoundBefore := testutil.ToFloat64(HTTPErrorsTotal.WithLabelValues(string(TypeNotFound)))
	internalBefore := testutil.ToFloat64(HTTPErrorsTotal.WithLabelValues(string(TypeInternal)))

	req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	assert.Equal(t, notFoundBefore+1, testutil.ToFloat64(HTTPErrorsTotal.WithLabelValues(string(TypeNotFound))))
	assert.Equal(t, internalBefore, testutil.ToFloat64(HTTPErrorsTotal.WithLabelValues(string(TypeInternal))))
}
