package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wanderlust/cmd/fx/account_fx"
	"wanderlust/cmd/fx/controllers_fx"
	"wanderlust/cmd/fx/db_fx"
	"wanderlust/cmd/fx/expense_fx"
	"wanderlust/cmd/fx/itinerary_fx"
	"wanderlust/cmd/fx/packing_fx"
	"wanderlust/cmd/fx/reviews_fx"
	"wanderlust/cmd/fx/share_fx"
	"wanderlust/cmd/fx/trip_fx"
	"wanderlust/cmd/fx/weather_fx"
	"wanderlust/internal/api/controllers"
	"wanderlust/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		itinerary_fx.Module,
		weather_fx.Module,
		reviews_fx.Module,
		trip_fx.Module,
		expense_fx.Module,
		packing_fx.Module,
		share_fx.Module,
		controllers_fx.Module,

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
	weatherController *controllers.WeatherController,
	reviewsController *controllers.ReviewsController,
	tripController *controllers.TripController,
	expenseController *controllers.ExpenseController,
	packingController *controllers.PackingController,
	accountController *controllers.AccountController,
	shareController *controllers.ShareController,
	templateController *controllers.TemplateController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())

	allowedOrigins := []string{"http://localhost:3000"}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Trace-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterRoutes(r,
		itineraryController, weatherController, reviewsController,
		tripController, expenseController, packingController,
		accountController, shareController, templateController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	weatherController *controllers.WeatherController,
	reviewsController *controllers.ReviewsController,
	tripController *controllers.TripController,
	expenseController *controllers.ExpenseController,
	packingController *controllers.PackingController,
	accountController *controllers.AccountController,
	shareController *controllers.ShareController,
	templateController *controllers.TemplateController) {

	api := r.Group("/api")
	api.POST("/generate-itinerary", itineraryController.GenerateItinerary)
	api.GET("/weather", weatherController.GetWeather)
	api.GET("/reviews", reviewsController.GetReviews)

	auth := api.Group("/auth")
	auth.POST("/register", accountController.Register)
	auth.POST("/login", accountController.Login)
	auth.POST("/guest", accountController.GuestSession)

	templates := api.Group("/templates")
	templates.GET("", templateController.ListTemplates)
	templates.GET("/:id", templateController.GetTemplate)
	templates.POST("/:id/apply", templateController.ApplyTemplate)

	share := api.Group("/share")
	share.POST("", shareController.BuildShareLink)
	share.GET("/parse", shareController.ParseSharedTrip)
	share.GET("/qr", shareController.ShareQRCode)

	trips := api.Group("/trips")
	trips.Use(middleware.JWTAuthMiddleware())
	trips.POST("", tripController.SaveTrip)
	trips.GET("", tripController.ListTrips)
	trips.GET("/sync-status", tripController.SyncStatus)
	trips.POST("/migrate", tripController.MigrateTrips)
	trips.GET("/:id", tripController.GetTrip)
	trips.DELETE("/:id", tripController.DeleteTrip)
	trips.POST("/:id/favorite", tripController.ToggleFavorite)
	trips.GET("/:id/export", tripController.ExportTrip)

	trips.POST("/:id/expenses", expenseController.AddExpense)
	trips.GET("/:id/expenses", expenseController.GetBudgetTracking)
	trips.PATCH("/:id/expenses/:expenseId", expenseController.UpdateExpense)
	trips.DELETE("/:id/expenses/:expenseId", expenseController.DeleteExpense)

	trips.PUT("/:id/packing", packingController.InitPackingList)
	trips.GET("/:id/packing", packingController.ListPackingItems)
	trips.POST("/:id/packing", packingController.AddPackingItem)
	trips.POST("/:id/packing/:itemId/toggle", packingController.ToggleItem)
}
