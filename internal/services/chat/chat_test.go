package chat

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"dialogs_backend/database"
	"dialogs_backend/internal/models"
	"dialogs_backend/pkg/apperrors"
)

// newTestDB поднимает изолированную in-memory sqlite базу для теста.
// TranslateError включен, как и в продовом подключении: на нем держится
// разбор гонки создания диалога.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "не удалось открыть тестовую БД")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Одна физическая коннекция: иначе каждая коннекция пула
	// получает собственную пустую :memory: базу
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db), "миграция тестовой БД не должна падать")
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         name,
		Email:        name + "@test.com",
		PasswordHash: "irrelevant",
	}
	user.ID = uuid.New().String()
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestUpload(t *testing.T, db *gorm.DB, userID, extension string) *models.Upload {
	t.Helper()

	upload := &models.Upload{
		UserID:       userID,
		OriginalName: "file" + extension,
		Extension:    extension,
		Path:         "/uploads/" + uuid.New().String() + extension,
	}
	upload.ID = uuid.New().String()
	require.NoError(t, db.Create(upload).Error)
	return upload
}

// requireAppCode проверяет, что ошибка - AppError с ожидаемым кодом
func requireAppCode(t *testing.T, err error, code apperrors.ErrorCode) {
	t.Helper()

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "ожидалась AppError, получено: %v", err)
	require.Equal(t, code, appErr.Code)
}
