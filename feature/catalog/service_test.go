package catalog

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestService_CreateGarment_Validation(t *testing.T) {
	db, _ := setupMockDB(t)
	svc := NewService(NewRepository(db), zap.NewNop())

	_, err := svc.CreateGarment(context.Background(), GarmentInput{Name: ""})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_UpdatePack_RejectsSelfReference(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(NewRepository(db), zap.NewNop())

	err := svc.UpdatePack(context.Background(), 5, PackInput{
		Name: "Pack Universal",
		Components: []RecipeLineInput{
			{GarmentID: 5, Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, ErrValidation)
	// Rejected before any statement runs.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_CreatePack_RejectsUnknownComponents(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(NewRepository(db), zap.NewNop())

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `garments`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := svc.CreatePack(context.Background(), PackInput{
		Name: "Pack Universal",
		Components: []RecipeLineInput{
			{GarmentID: 2, Quantity: 4},
			{GarmentID: 99, Quantity: 6}, // does not exist
		},
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_CreatePack_RejectsBadQuantity(t *testing.T) {
	db, _ := setupMockDB(t)
	svc := NewService(NewRepository(db), zap.NewNop())

	_, err := svc.CreatePack(context.Background(), PackInput{
		Name: "Pack Universal",
		Components: []RecipeLineInput{
			{GarmentID: 2, Quantity: 0},
		},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_UpsertTarget_Validation(t *testing.T) {
	db, _ := setupMockDB(t)
	svc := NewService(NewRepository(db), zap.NewNop())

	err := svc.UpsertTarget(context.Background(), TargetInput{ClientID: 0, PackGarmentID: 1})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.UpsertTarget(context.Background(), TargetInput{ClientID: 1, PackGarmentID: 1, TargetQuantity: -3})
	assert.ErrorIs(t, err, ErrValidation)
}
