package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dialogs_backend/internal/models"
)

// UploadRepository - интерфейс запросов к файловому хранилищу.
// Чат использует только поиск по владельцу и расширениям;
// загрузка и отдача байтов - зона ответственности внешнего компонента.
type UploadRepository interface {
	Save(ctx context.Context, upload *models.Upload) error
	FindByIDsAndUserIDAndExtensions(ctx context.Context, ids []string, userID string, extensions []string) ([]models.Upload, error)
	FindOne(ctx context.Context, id, userID, extension string) (*models.Upload, error)
}

type uploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) UploadRepository {
	return &uploadRepository{db: db}
}

func (r *uploadRepository) Save(ctx context.Context, u *models.Upload) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// FindByIDsAndUserIDAndExtensions возвращает файлы с данными ID, принадлежащие
// userID. Пустой extensions означает "любое расширение".
func (r *uploadRepository) FindByIDsAndUserIDAndExtensions(ctx context.Context, ids []string, userID string, extensions []string) ([]models.Upload, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Where("user_id = ?", userID)
	if len(extensions) > 0 {
		q = q.Where("extension IN ?", extensions)
	}

	var uploads []models.Upload
	if err := q.Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}

// FindOne возвращает файл по ID, владельцу и точному расширению, nil если не найден
func (r *uploadRepository) FindOne(ctx context.Context, id, userID, extension string) (*models.Upload, error) {
	var upload models.Upload
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND extension = ?", id, userID, extension).
		First(&upload).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &upload, nil
}
