package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/devprep/internal/auth"
	"github.com/lshigami/devprep/internal/controller"
	"github.com/lshigami/devprep/internal/dto"
	"github.com/lshigami/devprep/internal/service"
	"github.com/rs/zerolog/log"
)

// SessionController serves the authenticated routes. RequireAuth must run
// before every handler here.
type SessionController struct {
	gradingService service.GradingService
	sessionService service.SessionService
}

func NewSessionController(gs service.GradingService, ss service.SessionService) *SessionController {
	return &SessionController{gradingService: gs, sessionService: ss}
}

func principal(ctx *gin.Context) (*auth.Principal, bool) {
	p, ok := auth.PrincipalFrom(ctx)
	if !ok {
		log.Error().Str("path", ctx.FullPath()).Msg("Protected handler reached without a principal")
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: auth.MsgInvalidToken})
	}
	return p, ok
}

// SubmitAnswer godoc
// @Summary Grade a single answer
// @Description Scores the answer from 1 to 10 and returns a summary and corrections. Nothing is stored.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.SubmitAnswerRequest true "Question id and answer"
// @Success 200 {object} dto.Feedback
// @Failure 400 {object} dto.ErrorResponse "Missing question_id, or user_answer"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Service not configured or grading failed"
// @Router /submit-answer [post]
func (c *SessionController) SubmitAnswer(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswer: invalid request body")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing question_id, or user_answer"})
		return
	}

	feedback, err := c.gradingService.GradeAnswer(ctx.Request.Context(), p, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, feedback)
}

// SubmitSession godoc
// @Summary Save a completed practice session
// @Description Computes the final score, asks for overall feedback and stores the session with its answers.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.SubmitSessionRequest true "Topic, difficulty and graded answers"
// @Success 200 {object} dto.SessionDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Missing session_answers"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /submit-session [post]
func (c *SessionController) SubmitSession(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var req dto.SubmitSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitSession: invalid request body")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing session_answers"})
		return
	}

	session, err := c.sessionService.SubmitSession(ctx.Request.Context(), p, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// ListSessions godoc
// @Summary List my sessions
// @Description Sessions of the caller, newest first, without answers.
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SessionSummaryDTO
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions [get]
func (c *SessionController) ListSessions(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	sessions, err := c.sessionService.ListSessions(ctx.Request.Context(), p)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sessions)
}

// SessionStats godoc
// @Summary My session statistics
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SessionStatsDTO
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/stats [get]
func (c *SessionController) SessionStats(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	stats, err := c.sessionService.SessionStats(ctx.Request.Context(), p)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetSession godoc
// @Summary Get one of my sessions
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionDetailDTO
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Session belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	session, err := c.sessionService.GetSession(ctx.Request.Context(), p, ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// DeleteSession godoc
// @Summary Delete one of my sessions
// @Description Deleting a session that does not exist or is not yours succeeds without effect.
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/{id} [delete]
func (c *SessionController) DeleteSession(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	if err := c.sessionService.DeleteSession(ctx.Request.Context(), p, ctx.Param("id")); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Session deleted successfully"})
}

// DeleteAllSessions godoc
// @Summary Delete all of my sessions
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/all [delete]
func (c *SessionController) DeleteAllSessions(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	if err := c.sessionService.DeleteAllSessions(ctx.Request.Context(), p); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "All sessions deleted successfully"})
}
