package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"petsoft/internal/models/db_models"
	"petsoft/pkg/utils"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindById(ctx context.Context, id string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	// UpdateAccessByEmail sets has_access = true and returns the matched row count.
	UpdateAccessByEmail(ctx context.Context, email string) (int64, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	err := a.db.WithContext(ctx).Create(account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrEmailAlreadyExists
		}
		return fmt.Errorf("%w: insert account: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (a *accountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: find account by id: %v", utils.ErrDatabaseError, err)
	}

	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: find account by email: %v", utils.ErrDatabaseError, err)
	}

	return &account, nil
}

// UpdateAccessByEmail is a single-row write with no read-modify-write, so
// redelivered webhooks converge on the same state.
func (a *accountRepository) UpdateAccessByEmail(ctx context.Context, email string) (int64, error) {
	res := a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("email = ?", email).
		Update("has_access", true)
	if res.Error != nil {
		return 0, fmt.Errorf("%w: update access: %v", utils.ErrDatabaseError, res.Error)
	}
	return res.RowsAffected, nil
}
