package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/devprep/internal/apperr"
	"github.com/lshigami/devprep/internal/auth"
	"github.com/lshigami/devprep/internal/dto"
	"github.com/lshigami/devprep/internal/llm"
	"github.com/lshigami/devprep/internal/model"
	"github.com/lshigami/devprep/internal/repository"
	"github.com/rs/zerolog/log"
)

type SessionService interface {
	SubmitSession(ctx context.Context, principal *auth.Principal, req dto.SubmitSessionRequest) (*dto.SessionDetailDTO, error)
	ListSessions(ctx context.Context, principal *auth.Principal) ([]dto.SessionSummaryDTO, error)
	GetSession(ctx context.Context, principal *auth.Principal, id string) (*dto.SessionDetailDTO, error)
	DeleteSession(ctx context.Context, principal *auth.Principal, id string) error
	DeleteAllSessions(ctx context.Context, principal *auth.Principal) error
	SessionStats(ctx context.Context, principal *auth.Principal) (*dto.SessionStatsDTO, error)
}

type sessionService struct {
	sessionRepo  repository.SessionRepository
	answerRepo   repository.AnswerRepository
	questionRepo repository.QuestionRepository
	llm          llm.Provider
}

func NewSessionService(
	sessionRepo repository.SessionRepository,
	answerRepo repository.AnswerRepository,
	questionRepo repository.QuestionRepository,
	provider llm.Provider,
) SessionService {
	return &sessionService{
		sessionRepo:  sessionRepo,
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
		llm:          provider,
	}
}

// FinalFeedback is a pointer so an absent field can be told apart from an
// empty one.
type sessionSummary struct {
	FinalFeedback *string `json:"final_feedback"`
}

func (s *sessionService) SubmitSession(ctx context.Context, principal *auth.Principal, req dto.SubmitSessionRequest) (*dto.SessionDetailDTO, error) {
	const op = "SessionService.SubmitSession"

	if len(req.SessionAnswers) == 0 {
		return nil, apperr.Validation(op, "Missing session_answers")
	}
	scores := make([]int, 0, len(req.SessionAnswers))
	for _, a := range req.SessionAnswers {
		if a.QuestionID == 0 {
			return nil, apperr.Validation(op, "Each session answer needs a question_id")
		}
		if a.Feedback.Score < MinAnswerScore || a.Feedback.Score > MaxAnswerScore {
			return nil, apperr.Validation(op, "Each session answer needs a feedback score between 1 and 10")
		}
		scores = append(scores, a.Feedback.Score)
	}
	if !llm.Available(s.llm) {
		return nil, apperr.ServiceUnavailable(op, "Service not configured")
	}

	finalScore, err := FinalScore(scores)
	if err != nil {
		return nil, apperr.New(apperr.KindInternal, op, "Internal server error", err)
	}

	prompt, err := buildSessionPrompt(finalScore, req.SessionAnswers)
	if err != nil {
		return nil, apperr.New(apperr.KindInternal, op, "Internal server error", err)
	}
	text, err := s.llm.Complete(ctx, llm.Request{
		System: sessionSystemPrompt,
		User:   prompt,
		JSON:   true,
	})
	if err != nil {
		log.Error().Err(err).Str("userID", principal.ID).Msg("Completion call failed while summarising session")
		return nil, apperr.Upstream(op, err)
	}
	var summary sessionSummary
	if err := llm.DecodeJSON(sessionSummarySchema, text, &summary); err != nil {
		log.Error().Err(err).Str("userID", principal.ID).Str("rawResponse", text).Msg("Failed to parse session summary")
		return nil, apperr.Upstream(op, err)
	}
	finalFeedback := FallbackFinalFeedback
	if summary.FinalFeedback != nil {
		finalFeedback = *summary.FinalFeedback
	}

	session := &model.Session{
		UserID:        principal.ID,
		Topic:         req.Topic,
		Difficulty:    req.Difficulty,
		FinalScore:    finalScore,
		FinalFeedback: finalFeedback,
		Answers:       make([]model.Answer, 0, len(req.SessionAnswers)),
	}
	for _, a := range req.SessionAnswers {
		session.Answers = append(session.Answers, model.Answer{
			QuestionID:  a.QuestionID,
			UserAnswer:  a.UserAnswer,
			Score:       a.Feedback.Score,
			Summary:     a.Feedback.Summary,
			Corrections: a.Feedback.Corrections,
		})
	}
	if err := s.sessionRepo.CreateWithAnswers(ctx, session); err != nil {
		log.Error().Err(err).Str("userID", principal.ID).Msg("Error saving session")
		return nil, err
	}

	log.Info().
		Str("userID", principal.ID).
		Str("sessionID", session.ID.String()).
		Int("answers", len(session.Answers)).
		Float64("finalScore", finalScore).
		Msg("Session saved")

	// Read back what was stored so the response reflects the persisted rows.
	stored, err := s.sessionRepo.FindByID(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	return s.loadDetail(ctx, stored)
}

func (s *sessionService) ListSessions(ctx context.Context, principal *auth.Principal) ([]dto.SessionSummaryDTO, error) {
	sessions, err := s.sessionRepo.FindAllByUser(ctx, principal.ID)
	if err != nil {
		log.Error().Err(err).Str("userID", principal.ID).Msg("Error fetching sessions")
		return nil, err
	}
	resp := make([]dto.SessionSummaryDTO, 0, len(sessions))
	if err := copier.Copy(&resp, &sessions); err != nil {
		return nil, apperr.New(apperr.KindInternal, "SessionService.ListSessions", "Internal server error", err)
	}
	return resp, nil
}

func (s *sessionService) GetSession(ctx context.Context, principal *auth.Principal, id string) (*dto.SessionDetailDTO, error) {
	const op = "SessionService.GetSession"

	sessionID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.NotFound(op, "Session not found")
	}
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != principal.ID {
		return nil, apperr.Forbidden(op, "Forbidden")
	}
	return s.loadDetail(ctx, session)
}

func (s *sessionService) DeleteSession(ctx context.Context, principal *auth.Principal, id string) error {
	// A malformed id cannot match any row, so it is a no-op like any other
	// unknown id.
	sessionID, err := uuid.Parse(id)
	if err != nil {
		log.Info().Str("userID", principal.ID).Str("sessionID", id).Msg("Session delete ignored, id is not a UUID")
		return nil
	}
	deleted, err := s.sessionRepo.DeleteByIDForUser(ctx, sessionID, principal.ID)
	if err != nil {
		log.Error().Err(err).Str("userID", principal.ID).Str("sessionID", id).Msg("Error deleting session")
		return err
	}
	log.Info().Str("userID", principal.ID).Str("sessionID", id).Int64("deleted", deleted).Msg("Session delete")
	return nil
}

func (s *sessionService) DeleteAllSessions(ctx context.Context, principal *auth.Principal) error {
	deleted, err := s.sessionRepo.DeleteAllByUser(ctx, principal.ID)
	if err != nil {
		log.Error().Err(err).Str("userID", principal.ID).Msg("Error deleting all sessions")
		return err
	}
	log.Info().Str("userID", principal.ID).Int64("deleted", deleted).Msg("All sessions deleted")
	return nil
}

func (s *sessionService) SessionStats(ctx context.Context, principal *auth.Principal) (*dto.SessionStatsDTO, error) {
	count, average, err := s.sessionRepo.StatsByUser(ctx, principal.ID)
	if err != nil {
		log.Error().Err(err).Str("userID", principal.ID).Msg("Error computing session stats")
		return nil, err
	}
	return &dto.SessionStatsDTO{
		SessionCount: int(count),
		AverageScore: RoundToTenth(average),
	}, nil
}

// loadDetail attaches the session's answers and the text of each answered
// question. Answers whose question has since been removed keep an empty
// question_text.
func (s *sessionService) loadDetail(ctx context.Context, session *model.Session) (*dto.SessionDetailDTO, error) {
	answers, err := s.answerRepo.FindBySessionID(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(answers))
	seen := make(map[int64]bool, len(answers))
	for _, a := range answers {
		if !seen[a.QuestionID] {
			seen[a.QuestionID] = true
			ids = append(ids, a.QuestionID)
		}
	}
	questions, err := s.questionRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	textByID := make(map[int64]string, len(questions))
	for _, q := range questions {
		textByID[q.ID] = q.QuestionText
	}

	detail := &dto.SessionDetailDTO{}
	if err := copier.Copy(detail, session); err != nil {
		return nil, apperr.New(apperr.KindInternal, "SessionService.loadDetail", "Internal server error", err)
	}
	detail.OverallScore = session.FinalScore
	detail.Answers = make([]dto.AnswerResponseDTO, 0, len(answers))
	for _, a := range answers {
		var item dto.AnswerResponseDTO
		if err := copier.Copy(&item, &a); err != nil {
			return nil, apperr.New(apperr.KindInternal, "SessionService.loadDetail", "Internal server error", err)
		}
		item.QuestionText = textByID[a.QuestionID]
		detail.Answers = append(detail.Answers, item)
	}
	return detail, nil
}
