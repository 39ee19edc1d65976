package repository

import (
	"testing"

	"linkup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryCreateAndGet(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	user := &models.User{
		Email:    "alice@example.com",
		Password: "hashed",
		FullName: "Alice Smith",
	}
	require.NoError(t, repo.Create(testCtx(), user))
	require.NotZero(t, user.ID)

	got, err := repo.GetByID(testCtx(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "Alice Smith", got.FullName)
}

func TestUserRepositoryCreateDuplicateEmail(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(testCtx(), &models.User{
		Email:    "dup@example.com",
		Password: "hashed",
		FullName: "First",
	}))

	err := repo.Create(testCtx(), &models.User{
		Email:    "dup@example.com",
		Password: "hashed",
		FullName: "Second",
	})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)
}

func TestUserRepositoryGetByIDNotFound(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(testCtx(), 999)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestUserRepositoryGetByEmailMissingReturnsNil(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	got, err := repo.GetByEmail(testCtx(), "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepositoryUpdateFieldsPartial(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	user := createTestUser(t, db, "bob@example.com", "Bob Jones")

	got, err := repo.UpdateFields(testCtx(), user.ID, map[string]any{
		"bio": "Gopher",
	})
	require.NoError(t, err)
	assert.Equal(t, "Gopher", got.Bio)
	assert.Equal(t, "Bob Jones", got.FullName)
	assert.Equal(t, "hashed-password", got.Password)
}

func TestUserRepositoryUpdateFieldsEmptyMapReturnsRow(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	user := createTestUser(t, db, "carol@example.com", "Carol White")

	got, err := repo.UpdateFields(testCtx(), user.ID, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "Carol White", got.FullName)
}

func TestUserRepositoryUpdateFieldsUnknownUser(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	_, err := repo.UpdateFields(testCtx(), 12345, map[string]any{"bio": "nope"})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
