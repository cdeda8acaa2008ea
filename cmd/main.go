package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/yungbote/feedback-backend/internal/db"
	"github.com/yungbote/feedback-backend/internal/handlers"
	"github.com/yungbote/feedback-backend/internal/logger"
	"github.com/yungbote/feedback-backend/internal/middleware"
	"github.com/yungbote/feedback-backend/internal/repos"
	"github.com/yungbote/feedback-backend/internal/server"
	"github.com/yungbote/feedback-backend/internal/services"
	"github.com/yungbote/feedback-backend/internal/utils"
)

func main() {
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Database
	databaseService, err := db.NewDatabaseService(log)
	if err != nil {
		fatal(log, "Database init failed", err)
	}
	if err := databaseService.AutoMigrateAll(); err != nil {
		fatal(log, "Database auto migration failed", err)
	}
	theDB := databaseService.DB()

	// Repos
	log.Info("Setting up repos from main...")
	submissionRepo := repos.NewSubmissionRepo(theDB, log)
	aiCallLogRepo := repos.NewAICallLogRepo(theDB, log)

	// Services
	log.Info("Setting up services from main...")
	completionClient, err := services.NewCompletionClient(log)
	if err != nil {
		fatal(log, "Could not init CompletionClient", err)
	}
	feedbackService := services.NewFeedbackService(theDB, log, submissionRepo, aiCallLogRepo, completionClient)

	// Handlers
	log.Info("Setting up handlers from main...")
	feedbackHandler := handlers.NewFeedbackHandler(log, feedbackService)

	// Middleware
	requestLogMiddleware := middleware.NewRequestLogMiddleware(log)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		FeedbackHandler:      feedbackHandler,
		RequestLogMiddleware: requestLogMiddleware,
	})

	port := utils.GetEnv("PORT", "8000", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		fatal(log, "Server failed", err)
	}
}

// fatal flushes buffered log output before exiting; deferred Sync calls
// never run past os.Exit.
func fatal(log *logger.Logger, msg string, err error) {
	log.Error(msg, "error", err)
	log.Sync()
	os.Exit(1)
}
