package public

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/devprep/config"
	"github.com/lshigami/devprep/internal/controller"
	"github.com/lshigami/devprep/internal/dto"
	"github.com/lshigami/devprep/internal/service"
	"github.com/rs/zerolog/log"
)

type PublicController struct {
	questionService service.QuestionService
	cfg             *config.Config
}

func NewPublicController(qs service.QuestionService, cfg *config.Config) *PublicController {
	return &PublicController{questionService: qs, cfg: cfg}
}

// GetQuestions godoc
// @Summary Get practice questions
// @Description Returns up to `count` random questions matching the topic and difficulty exactly.
// @Tags Questions
// @Produce json
// @Param topic query string true "Topic, e.g. Docker"
// @Param difficulty query string true "Difficulty, e.g. Beginner"
// @Param count query int false "Number of questions (default 5)"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid count"
// @Failure 404 {object} dto.ErrorResponse "No questions found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions [get]
func (c *PublicController) GetQuestions(ctx *gin.Context) {
	topic := ctx.Query("topic")
	difficulty := ctx.Query("difficulty")

	count := service.DefaultQuestionCount
	if raw, ok := ctx.GetQuery("count"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "count must be a positive integer"})
			return
		}
		count = n
	}

	questions, err := c.questionService.SampleQuestions(ctx.Request.Context(), topic, difficulty, count)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	log.Debug().Str("topic", topic).Str("difficulty", difficulty).Int("returned", len(questions)).Msg("Questions sampled")
	ctx.JSON(http.StatusOK, questions)
}

// GetConfig godoc
// @Summary Public client configuration
// @Description Values the browser needs to sign in against the identity service.
// @Tags Meta
// @Produce json
// @Success 200 {object} dto.PublicConfigResponse
// @Router /config [get]
func (c *PublicController) GetConfig(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.PublicConfigResponse{
		SupabaseURL:     c.cfg.Supabase.URL,
		SupabaseAnonKey: c.cfg.Supabase.AnonKey,
	})
}

// Health godoc
// @Summary Liveness probe
// @Tags Meta
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (c *PublicController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
