package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dialogs_backend/internal/config"
	"dialogs_backend/internal/models"
	chatmodels "dialogs_backend/internal/models/chat"
)

var gormDB *gorm.DB

// ConnectGorm инициализирует GORM с URL из конфига.
// TranslateError обязателен: на нём держится разбор гонки
// создания диалога (unique violation -> gorm.ErrDuplicatedKey).
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Upload{},
		&chatmodels.Dialog{},
		&chatmodels.Message{},
		&chatmodels.MessageAttachment{},
	)
}
