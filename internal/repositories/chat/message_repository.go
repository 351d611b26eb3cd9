package chat

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dialogs_backend/internal/models/chat"
)

type MessageRepository struct {
	DB *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

// Create сохраняет сообщение вместе со ссылками на вложения и обновляет
// last_message_id диалога в одной транзакции - либо всё, либо ничего.
func (r *MessageRepository) Create(ctx context.Context, message *chat.Message) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		// Update также двигает updated_at диалога - на нём держится
		// сортировка списка диалогов по свежести.
		return tx.Model(&chat.Dialog{}).
			Where("id = ?", message.DialogID).
			Update("last_message_id", message.ID).Error
	})
}

// FindByDialogID возвращает страницу сообщений диалога.
// Порядок: от старых к новым (created_at ASC, id ASC как стабильный тай-брейк).
func (r *MessageRepository) FindByDialogID(ctx context.Context, dialogID string, skip, take int) ([]chat.Message, error) {
	if take == 0 {
		return []chat.Message{}, nil
	}
	var messages []chat.Message
	err := r.DB.WithContext(ctx).
		Where("dialog_id = ?", dialogID).
		Order("created_at ASC, id ASC").
		Offset(skip).
		Limit(take).
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Order("message_attachments.position ASC")
		}).
		Find(&messages).Error
	return messages, err
}

// LastMessage возвращает самое свежее сообщение диалога, nil если сообщений нет
func (r *MessageRepository) LastMessage(ctx context.Context, dialogID string) (*chat.Message, error) {
	var message chat.Message
	err := r.DB.WithContext(ctx).
		Where("dialog_id = ?", dialogID).
		Order("created_at DESC, id DESC").
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Order("message_attachments.position ASC")
		}).
		First(&message).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// CountByDialogID возвращает число сообщений в диалоге
func (r *MessageRepository) CountByDialogID(ctx context.Context, dialogID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&chat.Message{}).
		Where("dialog_id = ?", dialogID).
		Count(&count).Error
	return count, err
}
