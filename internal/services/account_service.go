package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"petsoft/internal/models/db_models"
	"petsoft/internal/models/request_models"
	"petsoft/internal/repositories"
	"petsoft/pkg/utils"
)

type AccountServiceInterface interface {
	// Authenticate checks credentials and returns the stored account.
	Authenticate(ctx context.Context, request request_models.LoginRequest) (*db_models.Account, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*db_models.Account, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	logger      *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (a *AccountService) Authenticate(ctx context.Context, request request_models.LoginRequest) (*db_models.Account, error) {
	request.Normalize()
	if err := request.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrValidation, err)
	}

	startTime := time.Now()

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		utils.CompareAgainstDummy(request.Password)
		a.logger.Info("login rejected: no account", zap.String("email", request.Email))
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		a.logger.Info("login rejected: password mismatch", zap.String("account_id", account.ID.String()))
		return nil, utils.ErrInvalidCredentials
	}

	a.logger.Debug("credentials verified",
		zap.String("account_id", account.ID.String()),
		zap.Duration("took", time.Since(startTime)))

	return account, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*db_models.Account, error) {
	request.Normalize()
	if err := request.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrValidation, err)
	}

	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		if errors.Is(err, utils.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	newAccount := &db_models.Account{
		Email:        request.Email,
		PasswordHash: hashedPassword,
		HasAccess:    false,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return nil, err
	}

	a.logger.Info("account created", zap.String("account_id", newAccount.ID.String()))

	return newAccount, nil
}
