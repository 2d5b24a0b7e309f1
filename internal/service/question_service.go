package service

import (
	"context"
	"math/rand/v2"

	"github.com/jinzhu/copier"
	"github.com/lshigami/devprep/internal/apperr"
	"github.com/lshigami/devprep/internal/dto"
	"github.com/lshigami/devprep/internal/model"
	"github.com/lshigami/devprep/internal/repository"
	"github.com/rs/zerolog/log"
)

const DefaultQuestionCount = 5

type QuestionService interface {
	SampleQuestions(ctx context.Context, topic, difficulty string, count int) ([]dto.QuestionResponse, error)
}

type questionService struct {
	repo repository.QuestionRepository
	intN func(n int) int
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo, intN: rand.IntN}
}

// SampleQuestions returns min(count, matches) questions chosen uniformly at
// random without replacement.
func (s *questionService) SampleQuestions(ctx context.Context, topic, difficulty string, count int) ([]dto.QuestionResponse, error) {
	const op = "QuestionService.SampleQuestions"
	if count < 1 {
		return nil, apperr.Validation(op, "count must be a positive integer")
	}

	questions, err := s.repo.FindByTopicAndDifficulty(ctx, topic, difficulty)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Str("difficulty", difficulty).Msg("Error fetching questions")
		return nil, err
	}
	if len(questions) == 0 {
		return nil, apperr.NotFound(op, "No questions found for the specified topic and difficulty.")
	}

	sampled := sample(questions, count, s.intN)

	resp := make([]dto.QuestionResponse, 0, len(sampled))
	if err := copier.Copy(&resp, &sampled); err != nil {
		return nil, apperr.New(apperr.KindInternal, op, "Internal server error", err)
	}
	return resp, nil
}

// sample runs a partial Fisher-Yates shuffle over a copy of items and keeps
// the first k, so every k-subset is equally likely.
func sample(items []model.Question, k int, intN func(int) int) []model.Question {
	pool := make([]model.Question, len(items))
	copy(pool, items)
	if k > len(pool) {
		k = len(pool)
	}
	for i := 0; i < k; i++ {
		j := i + intN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
