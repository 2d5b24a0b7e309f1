package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/lshigami/devprep/internal/apperr"
	"github.com/lshigami/devprep/internal/auth"
	"github.com/lshigami/devprep/internal/dto"
	"github.com/lshigami/devprep/internal/llm"
	"github.com/lshigami/devprep/internal/repository"
	"github.com/rs/zerolog/log"
)

// GradingService scores a single answer. It never persists anything; answers
// are stored when the whole session is submitted.
type GradingService interface {
	GradeAnswer(ctx context.Context, principal *auth.Principal, req dto.SubmitAnswerRequest) (*dto.Feedback, error)
}

type gradingService struct {
	questionRepo repository.QuestionRepository
	llm          llm.Provider
}

func NewGradingService(questionRepo repository.QuestionRepository, provider llm.Provider) GradingService {
	return &gradingService{questionRepo: questionRepo, llm: provider}
}

func (s *gradingService) GradeAnswer(ctx context.Context, principal *auth.Principal, req dto.SubmitAnswerRequest) (*dto.Feedback, error) {
	const op = "GradingService.GradeAnswer"

	if req.QuestionID == 0 || strings.TrimSpace(req.UserAnswer) == "" {
		return nil, apperr.Validation(op, "Missing question_id, or user_answer")
	}
	if !llm.Available(s.llm) {
		return nil, apperr.ServiceUnavailable(op, "Service not configured")
	}

	question, err := s.questionRepo.FindByID(ctx, req.QuestionID)
	if err != nil {
		return nil, err
	}

	text, err := s.llm.Complete(ctx, llm.Request{
		System: gradingSystemPrompt,
		User:   buildGradingPrompt(question, req.UserAnswer),
		JSON:   true,
	})
	if err != nil {
		log.Error().Err(err).Int64("questionID", question.ID).Msg("Completion call failed while grading answer")
		return nil, apperr.Upstream(op, err)
	}

	var reply gradingReply
	if err := llm.DecodeJSON(feedbackSchema, text, &reply); err != nil {
		log.Error().Err(err).Int64("questionID", question.ID).Str("rawResponse", text).Msg("Failed to parse grading response")
		return nil, apperr.Upstream(op, err)
	}
	feedback, err := reply.toFeedback()
	if err != nil {
		log.Error().Err(err).Int64("questionID", question.ID).Str("rawResponse", text).Msg("Failed to parse grading response")
		return nil, apperr.Upstream(op, err)
	}

	userID := ""
	if principal != nil {
		userID = principal.ID
	}
	log.Info().Str("userID", userID).Int64("questionID", question.ID).Int("score", feedback.Score).Msg("Answer graded")
	return feedback, nil
}

// gradingReply keeps the score as a json.Number because models sometimes
// write integral scores as 7.0, which the schema accepts as an integer.
type gradingReply struct {
	Score       json.Number `json:"score"`
	Summary     string      `json:"summary"`
	Corrections string      `json:"corrections"`
}

func (r gradingReply) toFeedback() (*dto.Feedback, error) {
	score, err := r.Score.Float64()
	if err != nil {
		return nil, fmt.Errorf("score %q is not a number: %w", r.Score, err)
	}
	if score != math.Trunc(score) {
		return nil, fmt.Errorf("score %v is not an integer", score)
	}
	return &dto.Feedback{
		Score:       int(score),
		Summary:     r.Summary,
		Corrections: r.Corrections,
	}, nil
}
