package reinforcement

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestCreate(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	service := NewService(gormDB, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `reinforcement_requests`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	req, err := service.Create(context.Background(), CreateInput{
		ClientID:          7,
		PackGarmentID:     3,
		RequestedQuantity: 6,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, req.Status)
	assert.Equal(t, uint(1), req.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsZeroQuantity(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	service := NewService(gormDB, zap.NewNop())

	_, err := service.Create(context.Background(), CreateInput{
		ClientID:          7,
		PackGarmentID:     3,
		RequestedQuantity: 0,
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsMissingClient(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	service := NewService(gormDB, zap.NewNop())

	_, err := service.Create(context.Background(), CreateInput{
		PackGarmentID:     3,
		RequestedQuantity: 2,
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetStatus(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	service := NewService(gormDB, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `reinforcement_requests`")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := service.SetStatus(context.Background(), 12, StatusShipped)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetStatusRejectsUnknownLiteral(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	service := NewService(gormDB, zap.NewNop())

	err := service.SetStatus(context.Background(), 12, "Despachado")
	assert.ErrorIs(t, err, ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetStatusNotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	service := NewService(gormDB, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `reinforcement_requests`")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := service.SetStatus(context.Background(), 99, StatusCompleted)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFiltersByClient(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	service := NewService(gormDB, zap.NewNop())

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "client_id", "pack_garment_id", "requested_quantity", "status", "created_at", "updated_at"}).
		AddRow(2, 7, 3, 6, StatusPending, now, now).
		AddRow(1, 7, 3, 4, StatusShipped, now.Add(-time.Hour), now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `reinforcement_requests` WHERE client_id = ? ORDER BY created_at DESC")).
		WithArgs(uint(7)).
		WillReturnRows(rows)

	requests, err := service.List(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, uint(2), requests[0].ID)
	assert.Equal(t, StatusShipped, requests[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
