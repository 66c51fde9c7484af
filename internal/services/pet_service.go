package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"petsoft/internal/models/db_models"
	"petsoft/internal/models/request_models"
	"petsoft/internal/models/response_models"
	"petsoft/internal/repositories"
	"petsoft/pkg/utils"
)

type PetServiceInterface interface {
	ListPets(ctx context.Context, accountID string) ([]response_models.PetResponse, error)
	GetPet(ctx context.Context, accountID, petID string) (*response_models.PetResponse, error)
	AddPet(ctx context.Context, accountID string, request request_models.PetRequest) (*response_models.PetResponse, error)
	EditPet(ctx context.Context, accountID, petID string, request request_models.PetRequest) (*response_models.PetResponse, error)
	DeletePet(ctx context.Context, accountID, petID string) error
	BuildDashboard(ctx context.Context, accountID string) (*response_models.DashboardResponse, error)
}

type PetService struct {
	petRepo repositories.PetRepository
	logger  *zap.Logger
}

func NewPetService(petRepo repositories.PetRepository, logger *zap.Logger) PetServiceInterface {
	return &PetService{
		petRepo: petRepo,
		logger:  logger,
	}
}

func (p *PetService) ListPets(ctx context.Context, accountID string) ([]response_models.PetResponse, error) {
	owner, err := parseID(accountID, "account id")
	if err != nil {
		return nil, err
	}

	pets, err := p.petRepo.ListByAccount(ctx, owner)
	if err != nil {
		return nil, err
	}

	out := make([]response_models.PetResponse, 0, len(pets))
	for i := range pets {
		out = append(out, toPetResponse(&pets[i]))
	}
	return out, nil
}

func (p *PetService) GetPet(ctx context.Context, accountID, petID string) (*response_models.PetResponse, error) {
	pet, err := p.ownedPet(ctx, accountID, petID)
	if err != nil {
		return nil, err
	}
	resp := toPetResponse(pet)
	return &resp, nil
}

func (p *PetService) AddPet(ctx context.Context, accountID string, request request_models.PetRequest) (*response_models.PetResponse, error) {
	owner, err := parseID(accountID, "account id")
	if err != nil {
		return nil, err
	}

	request.Normalize()
	if err := request.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrValidation, err)
	}

	pet := &db_models.Pet{
		AccountID: owner,
		Name:      request.Name,
		OwnerName: request.OwnerName,
		ImageURL:  request.ImageOrDefault(),
		Age:       request.Age,
		Notes:     request.Notes,
	}
	if err := p.petRepo.Insert(ctx, pet); err != nil {
		return nil, err
	}

	p.logger.Info("pet added", zap.String("account_id", accountID), zap.String("pet_id", pet.ID.String()))

	resp := toPetResponse(pet)
	return &resp, nil
}

func (p *PetService) EditPet(ctx context.Context, accountID, petID string, request request_models.PetRequest) (*response_models.PetResponse, error) {
	request.Normalize()
	if err := request.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrValidation, err)
	}

	pet, err := p.ownedPet(ctx, accountID, petID)
	if err != nil {
		return nil, err
	}

	pet.Name = request.Name
	pet.OwnerName = request.OwnerName
	pet.ImageURL = request.ImageOrDefault()
	pet.Age = request.Age
	pet.Notes = request.Notes

	if err := p.petRepo.Update(ctx, pet); err != nil {
		return nil, err
	}

	resp := toPetResponse(pet)
	return &resp, nil
}

func (p *PetService) DeletePet(ctx context.Context, accountID, petID string) error {
	pet, err := p.ownedPet(ctx, accountID, petID)
	if err != nil {
		return err
	}

	if err := p.petRepo.Delete(ctx, pet.ID); err != nil {
		return err
	}

	p.logger.Info("pet checked out", zap.String("account_id", accountID), zap.String("pet_id", petID))
	return nil
}

func (p *PetService) BuildDashboard(ctx context.Context, accountID string) (*response_models.DashboardResponse, error) {
	pets, err := p.ListPets(ctx, accountID)
	if err != nil {
		return nil, err
	}

	report := &response_models.DashboardResponse{
		Pets:       pets,
		GuestCount: len(pets),
	}
	if len(pets) > 0 {
		total := 0
		for _, pet := range pets {
			total += pet.Age
		}
		report.AverageAge = float64(total) / float64(len(pets))
	}
	return report, nil
}

// ownedPet loads a pet and checks it belongs to accountID.
func (p *PetService) ownedPet(ctx context.Context, accountID, petID string) (*db_models.Pet, error) {
	owner, err := parseID(accountID, "account id")
	if err != nil {
		return nil, err
	}
	id, err := parseID(petID, "pet id")
	if err != nil {
		return nil, err
	}

	pet, err := p.petRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, utils.ErrPetNotFound
	}
	if pet.AccountID != owner {
		p.logger.Warn("pet access denied",
			zap.String("account_id", accountID),
			zap.String("pet_id", petID))
		return nil, utils.ErrNotAuthorized
	}
	return pet, nil
}

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s", utils.ErrValidation, field)
	}
	return id, nil
}

func toPetResponse(pet *db_models.Pet) response_models.PetResponse {
	return response_models.PetResponse{
		ID:        pet.ID.String(),
		Name:      pet.Name,
		OwnerName: pet.OwnerName,
		ImageURL:  pet.ImageURL,
		Age:       pet.Age,
		Notes:     pet.Notes,
	}
}
