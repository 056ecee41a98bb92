package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"leafcart/cmd/fx/db_fx"
	"leafcart/cmd/fx/plants_fx"
	"leafcart/internal/api/controllers"
	"leafcart/internal/infra"
	"leafcart/pkg/middleware"
)

func main() {
	// Missing .env is fine, the environment may already be populated.
	_ = godotenv.Load()

	app := fx.New(
		db_fx.Module,
		plants_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
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
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(plantsController *controllers.PlantsController) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, plantsController)

	return r
}

func RegisterRoutes(r *gin.Engine, plantsController *controllers.PlantsController) {
	plants := r.Group("/plants")
	plants.GET("", plantsController.ListPlants)
	plants.GET("/categories", plantsController.ListCategories)
	plants.GET("/stats/overview", plantsController.GetStatsOverview)
	plants.GET("/:id", plantsController.GetPlantByID)
	plants.POST("", plantsController.CreatePlant)
	plants.PUT("/:id", plantsController.UpdatePlant)
	plants.DELETE("/:id", plantsController.DeletePlant)
}
