package chat

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dialogs_backend/internal/models/chat"
)

type DialogRepository struct {
	DB *gorm.DB
}

func NewDialogRepository(db *gorm.DB) *DialogRepository {
	return &DialogRepository{DB: db}
}

// FindByID возвращает диалог по ID, nil если не найден
func (r *DialogRepository) FindByID(ctx context.Context, id string) (*chat.Dialog, error) {
	var dialog chat.Dialog
	err := r.DB.WithContext(ctx).First(&dialog, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dialog, nil
}

// FindByPairKey ищет диалог по каноническому ключу пары, nil если не найден
func (r *DialogRepository) FindByPairKey(ctx context.Context, pairKey string) (*chat.Dialog, error) {
	var dialog chat.Dialog
	err := r.DB.WithContext(ctx).First(&dialog, "pair_key = ?", pairKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dialog, nil
}

// Create создаёт новый диалог. Уникальный индекс по pair_key превращает
// гонку первого контакта в gorm.ErrDuplicatedKey - её разбирает сервис.
func (r *DialogRepository) Create(ctx context.Context, dialog *chat.Dialog) error {
	return r.DB.WithContext(ctx).Create(dialog).Error
}

// FindAllByUser возвращает все диалоги пользователя, свежие сверху
// (updated_at DESC, обновляется при каждом новом сообщении)
func (r *DialogRepository) FindAllByUser(ctx context.Context, userID string) ([]chat.Dialog, error) {
	var dialogs []chat.Dialog
	err := r.DB.WithContext(ctx).
		Where("user_one_id = ? OR user_two_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&dialogs).Error
	return dialogs, err
}
