package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"petsoft/pkg/utils"
)

func newRepoWithMock(t *testing.T) (AccountRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewAccountRepository(db), mock
}

func TestUpdateAccessByEmail_ReturnsMatchedCount(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "accounts" SET`) + `.*"has_access"=.*WHERE email = .*`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.UpdateAccessByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAccessByEmail_NoMatch(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "accounts" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := repo.UpdateAccessByEmail(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestUpdateAccessByEmail_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "accounts" SET`)).
		WillReturnError(errors.New("db down"))

	_, err := repo.UpdateAccessByEmail(context.Background(), "a@x.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestFindByEmail_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "has_access"}).
		AddRow("6b1d3a53-5c1e-4f33-9a52-6a1f7d0e7a11", "a@x.com", "hash", true)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE email = $1`)).
		WillReturnRows(rows)

	acc, err := repo.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, acc)
	assert.Equal(t, "a@x.com", acc.Email)
	assert.True(t, acc.HasAccess)
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	acc, err := repo.FindByEmail(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, acc)
}

func TestFindByEmail_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts"`)).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.FindByEmail(context.Background(), "a@x.com")
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestFindById_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	id := "6b1d3a53-5c1e-4f33-9a52-6a1f7d0e7a11"
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "has_access"}).
		AddRow(id, "a@x.com", "hash", false)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE id = $1`)).
		WillReturnRows(rows)

	acc, err := repo.FindById(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, acc)
	assert.Equal(t, id, acc.ID.String())
}

func TestFindById_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	acc, err := repo.FindById(context.Background(), "6b1d3a53-5c1e-4f33-9a52-6a1f7d0e7a11")
	require.NoError(t, err)
	assert.Nil(t, acc)
}
