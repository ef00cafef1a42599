package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"planmyitinerary/cmd/fx/accountfx"
	"planmyitinerary/cmd/fx/controllersfx"
	"planmyitinerary/cmd/fx/dbfx"
	"planmyitinerary/cmd/fx/itineraryfx"
	"planmyitinerary/cmd/fx/mailfx"
	"planmyitinerary/cmd/fx/memcachefx"
	"planmyitinerary/cmd/fx/placesfx"
	"planmyitinerary/cmd/fx/plannerfx"
	"planmyitinerary/internal/api/controllers"
	"planmyitinerary/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		dbfx.Module,
		memcachefx.Module,
		mailfx.Module,
		plannerfx.Module,
		placesfx.Module,
		accountfx.Module,
		itineraryfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	accountController *controllers.AccountController) {

	api := r.Group("/api")

	accounts := api.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.GET("/verify-email/:token", accountController.VerifyEmail)
	accounts.POST("/login", accountController.Login)
	accounts.GET("/profile", middleware.JWTAuthMiddleware(), accountController.GetProfile)

	itineraries := api.Group("/itineraries")
	itineraries.Use(middleware.JWTAuthMiddleware())
	itineraries.POST("/generate", itineraryController.GenerateItinerary)
	itineraries.GET("/recent", itineraryController.GetRecentItineraries)
	itineraries.GET("/:itineraryId", itineraryController.GetItineraryDetail)
}
