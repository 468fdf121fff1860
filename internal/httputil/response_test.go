package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/paymentfields/internal/errors"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandleErrorGin(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
		expectedMsg    string
	}{
		{
			name:           "Success_NotFound",
			err:            apperrors.Wrap(apperrors.ErrNotFound, "unknown country"),
			expectedStatus: http.StatusNotFound,
			expectedError:  "not_found",
			expectedMsg:    "unknown country: not found",
		},
		{
			name:           "Success_InvalidInput",
			err:            apperrors.Wrap(apperrors.ErrInvalidInput, "unknown field kind"),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "invalid_input",
			expectedMsg:    "unknown field kind: invalid input",
		},
		{
			name:           "Success_InternalErrorHidesDetails",
			err:            errors.New("catalog exploded"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal_error",
			expectedMsg:    "An internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()

			HandleErrorGin(c, tt.err, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.expectedError, resp.Error)
			assert.Equal(t, tt.expectedMsg, resp.Message)
		})
	}

	t.Run("Success_NilErrorWritesNothing", func(t *testing.T) {
		c, w := newTestContext()
		HandleErrorGin(c, nil, nil)
		assert.Empty(t, w.Body.String())
	})
}

func TestHandleBadRequestGin(t *testing.T) {
	c, w := newTestContext()

	HandleBadRequestGin(c, errors.New("unexpected EOF"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "bad_request", resp.Error)
	assert.Equal(t, "unexpected EOF", resp.Message)
}

func TestHandleValidationErrorGin(t *testing.T) {
	c, w := newTestContext()

	HandleValidationErrorGin(c, errors.New("kind: cannot be blank."), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "validation_error", resp.Error)
	assert.Equal(t, "kind: cannot be blank.", resp.Message)
}

func TestAbortTooManyRequestsGin(t *testing.T) {
	tests := []struct {
		name       string
		retryAfter time.Duration
		expected   string
	}{
		{name: "Success_RoundsToSeconds", retryAfter: 2400 * time.Millisecond, expected: "2"},
		{name: "Success_AtLeastOneSecond", retryAfter: 10 * time.Millisecond, expected: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()

			AbortTooManyRequestsGin(c, tt.retryAfter)

			assert.True(t, c.IsAborted())
			assert.Equal(t, http.StatusTooManyRequests, w.Code)
			assert.Equal(t, tt.expected, w.Header().Get("Retry-After"))
			assert.Equal(t, "rate_limit_exceeded", decodeError(t, w).Error)
		})
	}
}
