package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{Auth("verify", "Missing Authorization header", nil), http.StatusUnauthorized},
		{Validation("submit", "Missing session_answers"), http.StatusBadRequest},
		{NotFound("get", "Session not found"), http.StatusNotFound},
		{Forbidden("get", "Forbidden"), http.StatusForbidden},
		{ServiceUnavailable("grade", "Service not configured"), http.StatusInternalServerError},
		{Upstream("grade", errors.New("boom")), http.StatusInternalServerError},
		{Persistence("save", errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.HTTPStatus(), tc.err.Kind.String())
	}
}

func TestKindOfThroughWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("saving session: %w", Persistence("SessionRepository.Create", cause))

	assert.Equal(t, KindPersistence, KindOf(err))
	assert.True(t, Is(err, KindPersistence))
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.False(t, Is(nil, KindInternal))
}

func TestErrorStringHidesNothingFromLogs(t *testing.T) {
	err := Upstream("GradingService.GradeAnswer", errors.New("429 rate limited"))
	assert.Contains(t, err.Error(), "429 rate limited")
	assert.Equal(t, "upstream service error", err.Message)
}
