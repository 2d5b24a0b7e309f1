package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lshigami/devprep/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	FindBySessionID(ctx context.Context, sessionID uuid.UUID) ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

// FindBySessionID returns answers in insertion order; answer ids are
// time-ordered UUIDs.
func (r *answerRepository) FindBySessionID(ctx context.Context, sessionID uuid.UUID) ([]model.Answer, error) {
	const op = "AnswerRepository.FindBySessionID"
	if r.db == nil {
		return nil, unavailable(op)
	}
	var answers []model.Answer
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&answers).Error
	if err != nil {
		return nil, translate(op, err, "")
	}
	return answers, nil
}
