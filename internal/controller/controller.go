// Package controller holds the HTTP handlers. Handlers translate requests into
// service calls and errors into status codes; they hold no state of their own.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/devprep/internal/apperr"
	"github.com/lshigami/devprep/internal/dto"
	"github.com/rs/zerolog/log"
)

const internalErrorMessage = "Internal server error"

// RespondError writes err as {"error": message} with the status its kind maps
// to. Errors without a kind become a generic 500.
func RespondError(ctx *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: internalErrorMessage})
		return
	}

	status := appErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		log.Error().Err(appErr).Str("kind", appErr.Kind.String()).Str("path", ctx.FullPath()).Msg("Request failed")
	}
	msg := appErr.Message
	if msg == "" {
		msg = internalErrorMessage
	}
	ctx.JSON(status, dto.ErrorResponse{Error: msg})
}
