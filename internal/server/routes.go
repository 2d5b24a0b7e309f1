package server

import (
	"github.com/gin-gonic/gin"
	"github.com/lshigami/devprep/internal/auth"
	"github.com/lshigami/devprep/internal/controller/public"
	"github.com/lshigami/devprep/internal/controller/user"
)

// routePrefixes lists the mount points. The frontend calls the API under
// /api while older clients use the bare paths.
var routePrefixes = []string{"", "/api"}

// RegisterRoutes mounts the API under every prefix in routePrefixes.
func RegisterRoutes(router *gin.Engine, verifier *auth.Verifier, publicCtrl *public.PublicController, sessionCtrl *user.SessionController) {
	requireAuth := auth.RequireAuth(verifier)

	for _, prefix := range routePrefixes {
		g := router.Group(prefix)
		{
			g.GET("/questions", publicCtrl.GetQuestions)
			g.GET("/config", publicCtrl.GetConfig)
			g.GET("/health", publicCtrl.Health)
		}

		protected := router.Group(prefix, requireAuth)
		{
			protected.POST("/submit-answer", sessionCtrl.SubmitAnswer)
			protected.POST("/submit-session", sessionCtrl.SubmitSession)

			protected.GET("/sessions", sessionCtrl.ListSessions)
			protected.GET("/sessions/stats", sessionCtrl.SessionStats)
			protected.GET("/sessions/:id", sessionCtrl.GetSession)
			protected.DELETE("/sessions/all", sessionCtrl.DeleteAllSessions)
			protected.DELETE("/sessions/:id", sessionCtrl.DeleteSession)
		}
	}
}
