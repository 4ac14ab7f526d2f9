package actions

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ohcard-dev/ohcard/db"
	"github.com/ohcard-dev/ohcard/internal/models"
	"github.com/ohcard-dev/ohcard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	conn, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	previous := db.DB
	db.DB = conn

	t.Cleanup(func() {
		db.DB = previous
		sqlDB.Close()
	})

	return mock
}

func mockActor() Actor {
	user := models.User{Email: "owner@example.com"}
	user.ID = 7
	return Actor{User: user, IP: "127.0.0.1"}
}

func TestCreateClientSurfacesPersistenceFailure(t *testing.T) {
	mock := mockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "clients"`)).
		WillReturnError(errors.New("connection refused"))
	mock.ExpectRollback()

	_, err := CreateClient(mockActor(), ClientInput{
		Nickname:      "小雨",
		ContactInfo:   "13800000000",
		ContactMethod: types.ContactPhone,
	})

	assert.ErrorIs(t, err, ErrActionFailed)
	assert.NotContains(t, err.Error(), "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClientRollsBackWhenActivityLogFails(t *testing.T) {
	mock := mockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "clients"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "activity_logs"`)).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := CreateClient(mockActor(), ClientInput{
		Nickname:      "小雨",
		ContactInfo:   "13800000000",
		ContactMethod: types.ContactPhone,
	})

	assert.ErrorIs(t, err, ErrActionFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSignOutSurfacesActivityLogFailure(t *testing.T) {
	mock := mockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "activity_logs"`)).
		WillReturnError(errors.New("disk full"))

	err := SignOut(mockActor())

	assert.ErrorIs(t, err, ErrActionFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
