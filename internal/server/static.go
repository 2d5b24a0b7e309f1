package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/devprep/internal/dto"
	"github.com/rs/zerolog/log"
)

// ServeFrontend serves index.html at / and any other file under dir for
// paths no API route matched. Without a directory unmatched paths are 404.
func ServeFrontend(router *gin.Engine, dir string) {
	if dir == "" {
		router.NoRoute(notFound)
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		log.Warn().Err(err).Str("dir", dir).Msg("STATIC_DIR is not a directory, frontend disabled")
		router.NoRoute(notFound)
		return
	}

	index := filepath.Join(dir, "index.html")
	router.GET("/", func(ctx *gin.Context) {
		ctx.File(index)
	})
	router.NoRoute(func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodGet && ctx.Request.Method != http.MethodHead {
			notFound(ctx)
			return
		}
		// path.Clean on a rooted path never climbs above the root.
		rel := strings.TrimPrefix(path.Clean("/"+ctx.Request.URL.Path), "/")
		file := filepath.Join(dir, filepath.FromSlash(rel))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			ctx.File(file)
			return
		}
		notFound(ctx)
	})
}

func notFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not found"})
}
