package routes

import (
	"net/http"
	"time"

	"pawhaven/config"
	"pawhaven/handlers"
	"pawhaven/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the wired handlers for route registration.
type HandlerBundle struct {
	Campaign *handlers.CampaignHandler
	User     *handlers.UserHandler
	Pet      *handlers.PetHandler
	Adoption *handlers.AdoptionHandler
}

// RegisterDonationRoutes registers the campaign endpoints. Reads and the
// recommendation sampler are public; every mutation requires a session.
func RegisterDonationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/donations")
	{
		api.GET("", hb.Campaign.ListCampaignsHandler)
		api.GET("/:id", hb.Campaign.GetCampaignByIDHandler)
		api.GET("/donators/:id", hb.Campaign.GetDonatorsHandler)
		api.GET("/recommended/:id", hb.Campaign.RecommendedHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("/add", hb.Campaign.CreateCampaignHandler)
		protected.PATCH("/update/:id", hb.Campaign.UpdateCampaignHandler)
		protected.PATCH("/pause/:id", hb.Campaign.PauseCampaignHandler)
		protected.POST("/:id/donate", hb.Campaign.DonateHandler)
		protected.POST("/refund/:id", hb.Campaign.RefundHandler)
		protected.DELETE("/:id", hb.Campaign.DeleteCampaignHandler)
	}
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/users")
	{
		api.POST("/register", hb.User.RegisterUserHandler)
		api.POST("/login", hb.User.AuthenticateUserHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("/logout", hb.User.LogoutHandler)
		protected.GET("/me", hb.User.GetMeHandler)
		protected.PATCH("/me", hb.User.UpdateMeHandler)
		protected.DELETE("/me", hb.User.DeleteMeHandler)
	}
}

// RegisterPetRoutes registers adoption listing endpoints.
func RegisterPetRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/pets")
	{
		api.GET("", hb.Pet.ListPetsHandler)
		api.GET("/:id", hb.Pet.GetPetByIDHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("/add", hb.Pet.CreatePetHandler)
		protected.PATCH("/update/:id", hb.Pet.UpdatePetHandler)
		protected.DELETE("/:id", hb.Pet.DeletePetHandler)
	}
}

// RegisterAdoptionRoutes registers adoption request endpoints.
func RegisterAdoptionRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/adoptions")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("/add", hb.Adoption.RequestAdoptionHandler)
		api.GET("/pet/:id", hb.Adoption.GetRequestsForPetHandler)
		api.GET("/mine", hb.Adoption.GetMyRequestsHandler)
		api.PATCH("/status/:id", hb.Adoption.SetStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Pawhaven server is running"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	origin := config.AppConfig.ClientOrigin
	if origin == "" {
		origin = "*"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterPetRoutes(r, hb)
	RegisterAdoptionRoutes(r, hb)
	RegisterDonationRoutes(r, hb)
	RegisterHealthRoute(r)
}
