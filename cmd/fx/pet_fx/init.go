package pet_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"petsoft/internal/repositories"
	"petsoft/internal/services"
)

var Module = fx.Provide(providePetRepo, providePetService)

func providePetRepo(db *gorm.DB) repositories.PetRepository {
	return repositories.NewPetRepository(db)
}

func providePetService(petRepo repositories.PetRepository, logger *zap.Logger) services.PetServiceInterface {
	return services.NewPetService(petRepo, logger)
}
