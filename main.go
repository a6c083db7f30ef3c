package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawhaven/config"
	"pawhaven/database"
	adoptionRepoPkg "pawhaven/database/repository/adoption"
	campaignRepoPkg "pawhaven/database/repository/campaign"
	petRepoPkg "pawhaven/database/repository/pet"
	userRepoPkg "pawhaven/database/repository/user"
	"pawhaven/handlers"
	"pawhaven/middleware"
	"pawhaven/routes"
	"pawhaven/services/adoption"
	"pawhaven/services/campaign"
	"pawhaven/services/payment"
	"pawhaven/services/pet"
	"pawhaven/services/user"
	"pawhaven/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	campaignRepo := campaignRepoPkg.NewMongoCampaignRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	petRepo := petRepoPkg.NewMongoPetRepo()
	adoptionRepo := adoptionRepoPkg.NewMongoAdoptionRepo()

	// Services.
	gateway := payment.NewStripeGateway(config.AppConfig.StripeKey, logger)
	campaignService := &campaign.DefaultCampaignService{
		Repo:     campaignRepo,
		Gateway:  gateway,
		Currency: config.AppConfig.StripeCurrency,
	}
	userService := &user.DefaultUserService{Repo: userRepo}
	petService := &pet.DefaultPetService{Repo: petRepo}
	adoptionService := &adoption.DefaultAdoptionService{
		Repo:       adoptionRepo,
		PetService: petService,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Campaign: handlers.NewCampaignHandler(campaignService),
		User:     handlers.NewUserHandler(userService),
		Pet:      handlers.NewPetHandler(petService),
		Adoption: handlers.NewAdoptionHandler(adoptionService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
