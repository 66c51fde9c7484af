package services

import (
	"context"

	"go.uber.org/zap"
	"petsoft/internal/models/db_models"
	"petsoft/internal/repositories"
	"petsoft/pkg/utils"
)

type RefreshTrigger string

const (
	TriggerNone RefreshTrigger = ""
	// TriggerUpdate re-reads the account by id so a webhook write reaches a live session.
	TriggerUpdate RefreshTrigger = "update"
)

type SessionServiceInterface interface {
	Issue(account *db_models.Account) (string, *utils.SessionClaims, error)
	Decode(token string) (*utils.SessionClaims, error)
	Refresh(ctx context.Context, claims *utils.SessionClaims, trigger RefreshTrigger) (string, *utils.SessionClaims, error)
}

type SessionService struct {
	codec       *utils.TokenCodec
	accountRepo repositories.AccountRepository
	logger      *zap.Logger
}

func NewSessionService(codec *utils.TokenCodec, accountRepo repositories.AccountRepository, logger *zap.Logger) SessionServiceInterface {
	return &SessionService{
		codec:       codec,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (s *SessionService) Issue(account *db_models.Account) (string, *utils.SessionClaims, error) {
	return s.codec.Encode(utils.SessionSnapshot{
		UserID:    account.ID.String(),
		Email:     account.Email,
		HasAccess: account.HasAccess,
	})
}

func (s *SessionService) Decode(token string) (*utils.SessionClaims, error) {
	return s.codec.Decode(token)
}

// Refresh re-issues the session token. Only TriggerUpdate consults storage;
// any other trigger carries the prior snapshot forward as-is.
func (s *SessionService) Refresh(ctx context.Context, claims *utils.SessionClaims, trigger RefreshTrigger) (string, *utils.SessionClaims, error) {
	snapshot := claims.Snapshot()

	if trigger == TriggerUpdate {
		account, err := s.accountRepo.FindById(ctx, claims.UserID)
		if err != nil {
			return "", nil, err
		}
		if account != nil {
			if account.HasAccess != snapshot.HasAccess {
				s.logger.Info("session access flag refreshed",
					zap.String("account_id", snapshot.UserID),
					zap.Bool("has_access", account.HasAccess))
			}
			snapshot.HasAccess = account.HasAccess
		} else {
			s.logger.Warn("session refresh: account no longer found", zap.String("account_id", snapshot.UserID))
		}
	}

	return s.codec.Encode(snapshot)
}
