package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"petsoft/internal/models/db_models"
	"petsoft/pkg/utils"
)

type PetRepository interface {
	Insert(ctx context.Context, pet *db_models.Pet) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Pet, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Pet, error)
	Update(ctx context.Context, pet *db_models.Pet) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type petRepository struct {
	db *gorm.DB
}

func NewPetRepository(db *gorm.DB) PetRepository {
	return &petRepository{db: db}
}

func (p *petRepository) Insert(ctx context.Context, pet *db_models.Pet) error {
	if err := p.db.WithContext(ctx).Create(pet).Error; err != nil {
		return fmt.Errorf("%w: insert pet: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (p *petRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Pet, error) {
	var pet db_models.Pet
	err := p.db.WithContext(ctx).First(&pet, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: find pet: %v", utils.ErrDatabaseError, err)
	}
	return &pet, nil
}

func (p *petRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Pet, error) {
	var pets []db_models.Pet
	err := p.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&pets).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list pets: %v", utils.ErrDatabaseError, err)
	}
	return pets, nil
}

func (p *petRepository) Update(ctx context.Context, pet *db_models.Pet) error {
	err := p.db.WithContext(ctx).
		Model(pet).
		Select("name", "owner_name", "image_url", "age", "notes", "updated_at").
		Updates(pet).Error
	if err != nil {
		return fmt.Errorf("%w: update pet: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (p *petRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := p.db.WithContext(ctx).Delete(&db_models.Pet{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("%w: delete pet: %v", utils.ErrDatabaseError, err)
	}
	return nil
}
