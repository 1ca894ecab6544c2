package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripmate/cmd/fx/db_fx"
	"tripmate/cmd/fx/geocode_fx"
	"tripmate/cmd/fx/itinerary_fx"
	"tripmate/cmd/fx/trip_fx"
	"tripmate/internal/api/controllers"
	"tripmate/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		itinerary_fx.Module,
		geocode_fx.Module,
		trip_fx.Module,

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
	extractController *controllers.ExtractController,
	geocodeController *controllers.GeocodeController,
	tripController *controllers.TripController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, extractController, geocodeController, tripController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	extractController *controllers.ExtractController,
	geocodeController *controllers.GeocodeController,
	tripController *controllers.TripController) {

	api := r.Group("/api")

	extractGroup := api.Group("/extract")
	extractGroup.POST("/metadata", extractController.ExtractMetadataHandler)
	extractGroup.POST("/itinerary", extractController.ExtractItineraryHandler)

	geocodeGroup := api.Group("/geocode")
	geocodeGroup.POST("/resolve", geocodeController.ResolveHandler)
	geocodeGroup.POST("/resolve-batch", geocodeController.ResolveBatchHandler)

	tripsGroup := api.Group("/trips")
	tripsGroup.POST("", tripController.CreateTripHandler)
	tripsGroup.GET("", tripController.ListTripsHandler)
	tripsGroup.GET("/:id", tripController.GetTripHandler)
}
