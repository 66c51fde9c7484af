package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"petsoft/internal/models/db_models"
	"petsoft/internal/models/request_models"
	"petsoft/pkg/utils"
)

func accountWithPassword(t *testing.T, email, password string, hasAccess bool) *db_models.Account {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &db_models.Account{Email: email, PasswordHash: hash, HasAccess: hasAccess}
}

func TestAuthenticate_Success(t *testing.T) {
	repo := newMemoryAccounts(accountWithPassword(t, "a@x.com", "hunter22", true))
	svc := NewAccountService(repo, zap.NewNop())

	acc, err := svc.Authenticate(context.Background(), request_models.LoginRequest{Email: "a@x.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", acc.Email)
	assert.True(t, acc.HasAccess)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	svc := NewAccountService(newMemoryAccounts(), zap.NewNop())

	_, err := svc.Authenticate(context.Background(), request_models.LoginRequest{Email: "ghost@x.com", Password: "whatever"})
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	repo := newMemoryAccounts(accountWithPassword(t, "a@x.com", "hunter22", false))
	svc := NewAccountService(repo, zap.NewNop())

	_, err := svc.Authenticate(context.Background(), request_models.LoginRequest{Email: "a@x.com", Password: "hunter23"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestAuthenticate_EmailIsCaseSensitive(t *testing.T) {
	repo := newMemoryAccounts(accountWithPassword(t, "a@x.com", "hunter22", false))
	svc := NewAccountService(repo, zap.NewNop())

	_, err := svc.Authenticate(context.Background(), request_models.LoginRequest{Email: "A@x.com", Password: "hunter22"})
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestAuthenticate_InvalidInput(t *testing.T) {
	svc := NewAccountService(newMemoryAccounts(), zap.NewNop())

	_, err := svc.Authenticate(context.Background(), request_models.LoginRequest{Email: "not-an-email", Password: "x"})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestAuthenticate_StorageDown(t *testing.T) {
	repo := newMemoryAccounts()
	repo.findErr = utils.ErrDatabaseError
	svc := NewAccountService(repo, zap.NewNop())

	_, err := svc.Authenticate(context.Background(), request_models.LoginRequest{Email: "a@x.com", Password: "hunter22"})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestCreateAccount(t *testing.T) {
	repo := newMemoryAccounts()
	svc := NewAccountService(repo, zap.NewNop())

	acc, err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{Email: "new@x.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.False(t, acc.HasAccess)
	assert.NotEqual(t, "hunter22", acc.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(acc.PasswordHash, "hunter22"))

	_, err = svc.CreateAccount(context.Background(), request_models.SignUpRequest{Email: "new@x.com", Password: "other-pass"})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestCreateAccount_PasswordOverBcryptLimit(t *testing.T) {
	repo := newMemoryAccounts()
	svc := NewAccountService(repo, zap.NewNop())

	_, err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Email:    "long@x.com",
		Password: strings.Repeat("p", 80),
	})
	assert.ErrorIs(t, err, utils.ErrValidation)

	acc, err := repo.FindByEmail(context.Background(), "long@x.com")
	require.NoError(t, err)
	assert.Nil(t, acc)
}

func TestCreateAccount_MultibytePasswordCountsBytes(t *testing.T) {
	svc := NewAccountService(newMemoryAccounts(), zap.NewNop())

	// 30 runes, 90 bytes.
	_, err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Email:    "kana@x.com",
		Password: strings.Repeat("パ", 30),
	})
	assert.ErrorIs(t, err, utils.ErrValidation)
}
