// Package http wires the gin router and the HTTP server.
package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/esmanureral/dental-ai-backend/internal/http/handlers"
	httpMW "github.com/esmanureral/dental-ai-backend/internal/http/middleware"
	"github.com/esmanureral/dental-ai-backend/internal/platform/logger"
)

type RouterConfig struct {
	RootHandler    *httpH.RootHandler
	ChatHandler    *httpH.ChatHandler
	AnalyzeHandler *httpH.AnalyzeHandler

	Logger *logger.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Logger))
	r.Use(httpMW.CORS())

	if cfg.RootHandler != nil {
		r.GET("/", cfg.RootHandler.Root)
		r.GET("/health", cfg.RootHandler.Health)
	}

	if cfg.ChatHandler != nil {
		r.POST("/chat", cfg.ChatHandler.Chat)
		r.GET("/chat/start_cli", cfg.ChatHandler.StartCLI)
	}

	if cfg.AnalyzeHandler != nil {
		r.POST("/analyze", cfg.AnalyzeHandler.Analyze)
	}

	return r
}
