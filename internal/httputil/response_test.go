package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	envelopeDomain "github.com/allisson/sealbox/internal/envelope/domain"
	apperrors "github.com/allisson/sealbox/internal/errors"
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
		name         string
		err          error
		expectedCode int
		expectedErr  string
		expectedMsg  string
	}{
		{
			name:         "not found",
			err:          apperrors.Wrap(apperrors.ErrNotFound, "record not found"),
			expectedCode: http.StatusNotFound,
			expectedErr:  "not_found",
			expectedMsg:  "Record not found",
		},
		{
			name:         "conflict",
			err:          apperrors.ErrConflict,
			expectedCode: http.StatusConflict,
			expectedErr:  "conflict",
		},
		{
			name:         "dek unwrap failure is generic",
			err:          envelopeDomain.ErrDekUnwrapFailed,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "decryption_failed",
			expectedMsg:  "Decryption failed",
		},
		{
			name:         "payload failure is generic",
			err:          envelopeDomain.ErrPayloadDecryptionFailed,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "decryption_failed",
			expectedMsg:  "Decryption failed",
		},
		{
			name:         "invalid input",
			err:          fmt.Errorf("payload_nonce: %w", envelopeDomain.ErrInvalidEncoding),
			expectedCode: http.StatusBadRequest,
			expectedErr:  "invalid_input",
			expectedMsg:  "payload_nonce: invalid hex encoding: invalid input",
		},
		{
			name:         "configuration",
			err:          envelopeDomain.ErrMasterKeyNotSet,
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "configuration_error",
			expectedMsg:  "The service is not configured correctly",
		},
		{
			name:         "unknown",
			err:          errors.New("database exploded"),
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "internal_error",
			expectedMsg:  "An internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&logs, nil))
			c, w := newTestContext()

			HandleErrorGin(c, tt.err, logger)

			assert.Equal(t, tt.expectedCode, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.expectedErr, resp.Error)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, resp.Message)
			}
			assert.Contains(t, logs.String(), tt.err.Error())
		})
	}
}

func TestHandleErrorGin_DoesNotLeakLayer(t *testing.T) {
	c, w := newTestContext()

	HandleErrorGin(c, envelopeDomain.ErrDekUnwrapFailed, nil)

	assert.NotContains(t, w.Body.String(), "DEK")
	assert.NotContains(t, w.Body.String(), "unwrap")
}

func TestHandleErrorGin_NilError(t *testing.T) {
	c, w := newTestContext()

	HandleErrorGin(c, nil, nil)

	assert.Equal(t, 0, w.Body.Len())
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

	HandleValidationErrorGin(c, errors.New("partyId: must not be blank."), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "validation_error", resp.Error)
	assert.Equal(t, "partyId: must not be blank.", resp.Message)
}
