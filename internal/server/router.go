package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/feedback-backend/internal/handlers"
	"github.com/yungbote/feedback-backend/internal/middleware"
)

type RouterConfig struct {
	FeedbackHandler      *handlers.FeedbackHandler
	RequestLogMiddleware *middleware.RequestLogMiddleware
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors: the user and admin dashboards are served from anywhere.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With"},
		AllowCredentials: false,
	}))

	if cfg.RequestLogMiddleware != nil {
		router.Use(cfg.RequestLogMiddleware.LogRequests())
	}

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.HealthCheck)
	router.POST("/submit", cfg.FeedbackHandler.Submit)
	router.GET("/submissions", cfg.FeedbackHandler.ListSubmissions)
	router.GET("/submissions/:id", cfg.FeedbackHandler.GetSubmission)
	router.GET("/stats", cfg.FeedbackHandler.Stats)

	return router
}
