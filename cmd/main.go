package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/devprep/config"
	"github.com/lshigami/devprep/database"
	_ "github.com/lshigami/devprep/docs" // Swagger docs
	"github.com/lshigami/devprep/internal/auth"
	"github.com/lshigami/devprep/internal/controller/public"
	"github.com/lshigami/devprep/internal/controller/user"
	"github.com/lshigami/devprep/internal/llm"
	"github.com/lshigami/devprep/internal/logger"
	"github.com/lshigami/devprep/internal/repository"
	"github.com/lshigami/devprep/internal/server"
	"github.com/lshigami/devprep/internal/service"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title DevPrep Interview Practice API
// @version 1.0
// @description Practice DevOps interview questions, get AI feedback on answers and keep a history of sessions.
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Bootstrap logging before config so config loading can log; the level is
	// re-applied once LOG_LEVEL is known.
	logger.Init("info", false)

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			newIdentityProvider,
			auth.NewVerifier,
			newCompletionProvider,
			server.NewGinEngine,
		),

		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewSessionRepository,
			repository.NewAnswerRepository,
		),

		fx.Provide(
			service.NewQuestionService,
			service.NewGradingService,
			service.NewSessionService,
		),

		fx.Provide(
			public.NewPublicController,
			user.NewSessionController,
		),

		fx.Invoke(applyLogConfig),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Error during shutdown")
	}
	log.Info().Msg("Application shut down gracefully")
}

func applyLogConfig(cfg *config.Config) {
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)
}

func newIdentityProvider(cfg *config.Config) auth.IdentityProvider {
	if !cfg.Supabase.Configured() {
		log.Warn().Msg("SUPABASE_URL or SUPABASE_KEY is not set. Protected routes will be non-functional.")
	}
	return auth.NewSupabaseIdentity(cfg)
}

func newCompletionProvider(lc fx.Lifecycle, cfg *config.Config) (llm.Provider, error) {
	p, err := llm.NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	if closer, ok := unwrapCloser(p); ok {
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error { return closer.Close() },
		})
	}
	return p, nil
}

func unwrapCloser(p llm.Provider) (interface{ Close() error }, bool) {
	if lp, ok := p.(*llm.LoggingProvider); ok {
		p = lp.Unwrap()
	}
	c, ok := p.(interface{ Close() error })
	return c, ok
}

// AutoMigrateDB creates the tables when DATABASE_AUTO_MIGRATE is set. In
// production the schema is owned by the hosted database.
func AutoMigrateDB(db *gorm.DB, cfg *config.Config) error {
	if db == nil || !cfg.Database.AutoMigrate {
		return nil
	}
	return database.AutoMigrate(db)
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	verifier *auth.Verifier,
	publicCtrl *public.PublicController,
	sessionCtrl *user.SessionController,
) {
	server.RegisterRoutes(router, verifier, publicCtrl, sessionCtrl)
	server.ServeFrontend(router, cfg.Server.StaticDir)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("DevPrep API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
