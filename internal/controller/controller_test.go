package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/devprep/internal/apperr"
	"github.com/lshigami/devprep/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", apperr.Validation("op", "Missing session_answers"), http.StatusBadRequest, "Missing session_answers"},
		{"auth", apperr.Auth("op", "Invalid or expired token", nil), http.StatusUnauthorized, "Invalid or expired token"},
		{"forbidden", apperr.Forbidden("op", "Forbidden"), http.StatusForbidden, "Forbidden"},
		{"not found", apperr.NotFound("op", "Session not found"), http.StatusNotFound, "Session not found"},
		{"unavailable", apperr.ServiceUnavailable("op", "Service not configured"), http.StatusInternalServerError, "Service not configured"},
		{"upstream hides detail", apperr.Upstream("op", errors.New("api key sk-123 rejected")), http.StatusInternalServerError, "upstream service error"},
		{"wrapped", errors.Join(errors.New("context"), apperr.NotFound("op", "Question not found")), http.StatusNotFound, "Question not found"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			RespondError(ctx, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body.Error)
		})
	}
}
