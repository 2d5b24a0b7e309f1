package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lshigami/devprep/internal/apperr"
	"github.com/lshigami/devprep/internal/auth"
	"github.com/lshigami/devprep/internal/dto"
	"github.com/lshigami/devprep/internal/llm"
	"github.com/lshigami/devprep/internal/model"
	"github.com/lshigami/devprep/internal/repository"
	"github.com/lshigami/devprep/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type sessionFixture struct {
	db        *gorm.DB
	svc       SessionService
	mock      *llm.MockProvider
	questions []model.Question
}

func newSessionFixture(t *testing.T, responses ...llm.MockResponse) *sessionFixture {
	t.Helper()
	db := testutil.NewDB(t)
	qs := testutil.SeedQuestions(t, db,
		model.Question{QuestionText: "What is a Deployment?", Topic: "Kubernetes", Difficulty: "Intermediate"},
		model.Question{QuestionText: "What is a Service?", Topic: "Kubernetes", Difficulty: "Intermediate"},
		model.Question{QuestionText: "What is an Ingress?", Topic: "Kubernetes", Difficulty: "Intermediate"},
	)
	mock := llm.NewMockProvider(responses...)
	svc := NewSessionService(
		repository.NewSessionRepository(db),
		repository.NewAnswerRepository(db),
		repository.NewQuestionRepository(db),
		mock,
	)
	return &sessionFixture{db: db, svc: svc, mock: mock, questions: qs}
}

func (f *sessionFixture) request(scores ...int) dto.SubmitSessionRequest {
	req := dto.SubmitSessionRequest{Topic: "Kubernetes", Difficulty: "Intermediate"}
	for i, s := range scores {
		req.SessionAnswers = append(req.SessionAnswers, dto.SessionAnswerDTO{
			QuestionID: f.questions[i%len(f.questions)].ID,
			UserAnswer: "answer",
			Feedback:   dto.Feedback{Score: s, Summary: "summary", Corrections: "corrections"},
		})
	}
	return req
}

func feedbackResponse(text string) llm.MockResponse {
	return llm.MockResponse{Text: `{"final_feedback": "` + text + `"}`}
}

func TestSubmitSession(t *testing.T) {
	f := newSessionFixture(t, feedbackResponse("Solid fundamentals."))
	ctx := context.Background()

	got, err := f.svc.SubmitSession(ctx, testPrincipal, f.request(10, 10, 9))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, testPrincipal.ID, got.UserID)
	assert.Equal(t, 9.7, got.FinalScore)
	assert.Equal(t, 9.7, got.OverallScore)
	assert.Equal(t, "Solid fundamentals.", got.FinalFeedback)
	require.Len(t, got.Answers, 3)
	for i, a := range got.Answers {
		assert.Equal(t, got.ID, a.SessionID)
		assert.Equal(t, f.questions[i].ID, a.QuestionID)
		assert.Equal(t, f.questions[i].QuestionText, a.QuestionText)
	}

	require.Equal(t, 1, f.mock.CallCount())
	assert.True(t, f.mock.Calls[0].JSON)
	assert.Contains(t, f.mock.Calls[0].User, "9.7")

	var sessions, answers int64
	f.db.Model(&model.Session{}).Count(&sessions)
	f.db.Model(&model.Answer{}).Count(&answers)
	assert.Equal(t, int64(1), sessions)
	assert.Equal(t, int64(3), answers)

	fetched, err := f.svc.GetSession(ctx, testPrincipal, got.ID.String())
	require.NoError(t, err)
	assert.Equal(t, got.FinalScore, fetched.FinalScore)
	assert.Len(t, fetched.Answers, 3)
}

func TestSubmitSessionAverages(t *testing.T) {
	f := newSessionFixture(t, feedbackResponse("ok"))
	got, err := f.svc.SubmitSession(context.Background(), testPrincipal, f.request(8, 7))
	require.NoError(t, err)
	assert.Equal(t, 7.5, got.FinalScore)
}

func TestSubmitSessionFallbackFeedback(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"missing field", `{}`, FallbackFinalFeedback},
		{"empty field is kept", `{"final_feedback": ""}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSessionFixture(t, llm.MockResponse{Text: tt.text})
			got, err := f.svc.SubmitSession(context.Background(), testPrincipal, f.request(6))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.FinalFeedback)
		})
	}
}

func TestSubmitSessionValidation(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	_, err := f.svc.SubmitSession(ctx, testPrincipal, dto.SubmitSessionRequest{Topic: "Kubernetes", Difficulty: "Intermediate"})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Equal(t, "Missing session_answers", err.(*apperr.Error).Message)

	_, err = f.svc.SubmitSession(ctx, testPrincipal, f.request(0))
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	_, err = f.svc.SubmitSession(ctx, testPrincipal, f.request(11))
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	assert.Zero(t, f.mock.CallCount())
}

func TestSubmitSessionUpstreamFailure(t *testing.T) {
	f := newSessionFixture(t, llm.MockResponse{Text: "not json at all"})
	_, err := f.svc.SubmitSession(context.Background(), testPrincipal, f.request(5, 6))
	assert.True(t, apperr.Is(err, apperr.KindUpstream))

	var sessions int64
	f.db.Model(&model.Session{}).Count(&sessions)
	assert.Zero(t, sessions, "nothing is stored when the summary fails")
}

func TestSubmitSessionNotConfigured(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewSessionService(
		repository.NewSessionRepository(db),
		repository.NewAnswerRepository(db),
		repository.NewQuestionRepository(db),
		llm.Disabled{},
	)
	_, err := svc.SubmitSession(context.Background(), testPrincipal, dto.SubmitSessionRequest{
		SessionAnswers: []dto.SessionAnswerDTO{{QuestionID: 1, UserAnswer: "a", Feedback: dto.Feedback{Score: 5}}},
	})
	assert.True(t, apperr.Is(err, apperr.KindServiceUnavailable))
}

func TestGetSessionAccess(t *testing.T) {
	f := newSessionFixture(t, feedbackResponse("ok"))
	ctx := context.Background()
	created, err := f.svc.SubmitSession(ctx, testPrincipal, f.request(7))
	require.NoError(t, err)

	other := &auth.Principal{ID: "user-2"}
	_, err = f.svc.GetSession(ctx, other, created.ID.String())
	assert.True(t, apperr.Is(err, apperr.KindForbidden))

	_, err = f.svc.GetSession(ctx, testPrincipal, uuid.NewString())
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = f.svc.GetSession(ctx, testPrincipal, "not-a-uuid")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestListStatsAndDeleteSessions(t *testing.T) {
	f := newSessionFixture(t,
		feedbackResponse("first"),
		feedbackResponse("second"),
		feedbackResponse("theirs"),
	)
	ctx := context.Background()
	other := &auth.Principal{ID: "user-2"}

	first, err := f.svc.SubmitSession(ctx, testPrincipal, f.request(6, 7))
	require.NoError(t, err)
	second, err := f.svc.SubmitSession(ctx, testPrincipal, f.request(9))
	require.NoError(t, err)
	theirs, err := f.svc.SubmitSession(ctx, other, f.request(2))
	require.NoError(t, err)

	list, err := f.svc.ListSessions(ctx, testPrincipal)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, s := range list {
		assert.Equal(t, testPrincipal.ID, s.UserID)
	}

	stats, err := f.svc.SessionStats(ctx, testPrincipal)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.SessionCount)
	assert.Equal(t, 7.8, stats.AverageScore) // mean of 6.5 and 9

	// Deleting someone else's session succeeds but removes nothing.
	require.NoError(t, f.svc.DeleteSession(ctx, testPrincipal, theirs.ID.String()))
	_, err = f.svc.GetSession(ctx, other, theirs.ID.String())
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteSession(ctx, testPrincipal, first.ID.String()))
	_, err = f.svc.GetSession(ctx, testPrincipal, first.ID.String())
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	require.NoError(t, f.svc.DeleteSession(ctx, testPrincipal, "bogus"), "a malformed id deletes nothing")
	_, err = f.svc.GetSession(ctx, testPrincipal, second.ID.String())
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteAllSessions(ctx, testPrincipal))
	require.NoError(t, f.svc.DeleteAllSessions(ctx, testPrincipal), "delete-all is idempotent")

	list, err = f.svc.ListSessions(ctx, testPrincipal)
	require.NoError(t, err)
	assert.Empty(t, list)
	_, err = f.svc.GetSession(ctx, testPrincipal, second.ID.String())
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	var orphaned int64
	f.db.Model(&model.Answer{}).Where("session_id IN ?", []uuid.UUID{first.ID, second.ID}).Count(&orphaned)
	assert.Zero(t, orphaned)

	stats, err = f.svc.SessionStats(ctx, testPrincipal)
	require.NoError(t, err)
	assert.Equal(t, &dto.SessionStatsDTO{}, stats)

	_, err = f.svc.GetSession(ctx, other, theirs.ID.String())
	assert.NoError(t, err)
}
