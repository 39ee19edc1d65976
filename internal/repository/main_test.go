package repository

import (
	"context"
	"testing"
	"time"

	"linkup/internal/database"
	"linkup/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupDB opens a fresh in-memory sqlite database with the full schema.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, fullName string) *models.User {
	t.Helper()
	user := &models.User{
		Email:    email,
		Password: "hashed-password",
		FullName: fullName,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, author *models.User, content string, createdAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		Content:   content,
		UserID:    author.ID,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func testCtx() context.Context {
	return context.Background()
}
