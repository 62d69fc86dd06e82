package main

import (
	"log"
	"net/http"

	"ecocycle/internal/config"
	"ecocycle/internal/controllers"
	"ecocycle/internal/logger"
	"ecocycle/internal/middleware"
	"ecocycle/internal/routes"
	"ecocycle/internal/service"
	"ecocycle/internal/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logging to file
	logger.Setup(cfg.LogFile, cfg.LogLevel)

	// Open the document store (seeds the file on first run)
	fileStore, err := store.NewFileStore(cfg.DataFile)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}

	tokens := middleware.NewTokenIssuer(cfg.JWTSecret)

	userService := service.NewUserService(fileStore)
	requestService := service.NewRequestService(fileStore)
	feedbackService := service.NewFeedbackService(fileStore, cfg.FeedbackRequireUser)

	// Setup Gin router
	r := routes.SetupRouter(
		cfg,
		tokens,
		controllers.NewUserController(userService, tokens),
		controllers.NewRequestController(requestService),
		controllers.NewFeedbackController(feedbackService),
		controllers.NewAdminController(userService),
	)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("EcoCycle running at port %s", cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}
