package repository

import (
	"errors"

	"github.com/lshigami/devprep/internal/apperr"
	"gorm.io/gorm"
)

var errNoDatabase = errors.New("database handle is nil")

func unavailable(op string) error {
	return apperr.New(apperr.KindServiceUnavailable, op, "Database not configured", errNoDatabase)
}

// translate maps gorm errors onto the application taxonomy.
func translate(op string, err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(op, notFoundMsg)
	}
	return apperr.Persistence(op, err)
}
