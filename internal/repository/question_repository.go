package repository

import (
	"context"

	"github.com/lshigami/devprep/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByTopicAndDifficulty(ctx context.Context, topic, difficulty string) ([]model.Question, error)
	FindByID(ctx context.Context, id int64) (*model.Question, error)
	FindByIDs(ctx context.Context, ids []int64) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// FindByTopicAndDifficulty matches both columns exactly (case-sensitive).
func (r *questionRepository) FindByTopicAndDifficulty(ctx context.Context, topic, difficulty string) ([]model.Question, error) {
	const op = "QuestionRepository.FindByTopicAndDifficulty"
	if r.db == nil {
		return nil, unavailable(op)
	}
	var questions []model.Question
	err := r.db.WithContext(ctx).
		Where("topic = ? AND difficulty = ?", topic, difficulty).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, translate(op, err, "")
	}
	return questions, nil
}

func (r *questionRepository) FindByID(ctx context.Context, id int64) (*model.Question, error) {
	const op = "QuestionRepository.FindByID"
	if r.db == nil {
		return nil, unavailable(op)
	}
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, translate(op, err, "Question not found")
	}
	return &question, nil
}

func (r *questionRepository) FindByIDs(ctx context.Context, ids []int64) ([]model.Question, error) {
	const op = "QuestionRepository.FindByIDs"
	if r.db == nil {
		return nil, unavailable(op)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	var questions []model.Question
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, translate(op, err, "")
	}
	return questions, nil
}
