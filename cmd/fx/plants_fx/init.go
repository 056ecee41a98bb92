package plants_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"leafcart/internal/api/controllers"
	"leafcart/internal/repositories"
	"leafcart/internal/services"
)

var Module = fx.Provide(
	providePlantsRepo, providePlantsService, providePlantsController)

func providePlantsRepo(db *gorm.DB) repositories.PlantRepository {
	return repositories.NewPlantRepository(db)
}

func providePlantsService(plantRepo repositories.PlantRepository) services.PlantServiceInterface {
	return services.NewPlantService(plantRepo)
}

func providePlantsController(plantService services.PlantServiceInterface) *controllers.PlantsController {
	return controllers.NewPlantsController(plantService)
}
