package server

import (
	"github.com/teemo-ai/estimation-server/internal/api"
	"github.com/teemo-ai/estimation-server/internal/app"

	"github.com/gin-gonic/gin"
)

func (s *Server) SetupRoutes(app *app.App) {
	s.ginEngine.GET("/", handlerWrapper(app, api.Root))
	s.ginEngine.GET("/health", handlerWrapper(app, api.Health))
	s.ginEngine.GET("/healthz", handlerWrapper(app, api.Health))

	s.ginEngine.POST("/estimate", handlerWrapper(app, api.Estimate))
}

func handlerWrapper(app *app.App, f func(c *gin.Context)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set("app", app)
		f(ctx)
	}
}
