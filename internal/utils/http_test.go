package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusOK, "all good", map[string]string{"key": "value"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "all good", response["message"])
	assert.Equal(t, map[string]interface{}{"key": "value"}, response["data"])
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(echo.Context, string) error
		wantCode int
	}{
		{"bad request", BadRequestResponse, http.StatusBadRequest},
		{"unauthorized", UnauthorizedResponse, http.StatusUnauthorized},
		{"not found", NotFoundResponse, http.StatusNotFound},
		{"conflict", ConflictResponse, http.StatusConflict},
		{"internal", InternalServerErrorResponse, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			err := tt.fn(c, "boom")
			require.NoError(t, err)

			assert.Equal(t, tt.wantCode, rec.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, false, response["success"])
			assert.Equal(t, "boom", response["error"])
			assert.Equal(t, float64(tt.wantCode), response["code"])
		})
	}
}
