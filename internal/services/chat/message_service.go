package chat

import (
	"context"
	"time"

	"github.com/google/uuid"

	modelChat "dialogs_backend/internal/models/chat"
	repoChat "dialogs_backend/internal/repositories/chat"
	"dialogs_backend/pkg/apperrors"
)

type MessageService struct {
	Messages    *repoChat.MessageRepository
	Dialogs     *repoChat.DialogRepository
	Attachments *AttachmentService
}

func NewMessageService(
	messages *repoChat.MessageRepository,
	dialogs *repoChat.DialogRepository,
	attachments *AttachmentService,
) *MessageService {
	return &MessageService{
		Messages:    messages,
		Dialogs:     dialogs,
		Attachments: attachments,
	}
}

// CreateMessageInput - вложения приходят ссылками на записи uploads
type CreateMessageInput struct {
	Text     string
	AudioID  string
	ImageIDs []string
	FileIDs  []string
}

// Create отправляет сообщение в диалог.
// Отправитель обязан быть участником диалога, каждое вложение - принадлежать
// отправителю и проходить политику своей категории. Любая ошибка валидации
// прерывает операцию до записи: сообщение либо сохраняется целиком, либо никак.
func (s *MessageService) Create(ctx context.Context, dialogID, senderID string, input CreateMessageInput) (*modelChat.Message, error) {
	dialog, err := s.Dialogs.FindByID(ctx, dialogID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if dialog == nil {
		return nil, apperrors.ErrDialogNotFound
	}
	if !dialog.HasParticipant(senderID) {
		return nil, apperrors.ErrDialogAccessDenied
	}

	audio, err := s.Attachments.ResolveSingle(ctx, senderID, input.AudioID, AudioCategory)
	if err != nil {
		return nil, err
	}
	images, err := s.Attachments.Resolve(ctx, senderID, input.ImageIDs, ImageCategory)
	if err != nil {
		return nil, err
	}
	files, err := s.Attachments.Resolve(ctx, senderID, input.FileIDs, FileCategory)
	if err != nil {
		return nil, err
	}

	// Текст может быть пустым только при наличии хотя бы одного вложения
	if input.Text == "" && audio == nil && len(images) == 0 && len(files) == 0 {
		return nil, apperrors.ErrEmptyMessage
	}

	message := &modelChat.Message{
		ID:        uuid.New().String(),
		DialogID:  dialogID,
		SenderID:  senderID,
		Text:      input.Text,
		CreatedAt: time.Now(),
	}

	if audio != nil {
		message.Attachments = append(message.Attachments, newAttachmentRef(message.ID, audio.ID, modelChat.CategoryAudio, 0))
	}
	for i, img := range images {
		message.Attachments = append(message.Attachments, newAttachmentRef(message.ID, img.ID, modelChat.CategoryImage, i))
	}
	for i, f := range files {
		message.Attachments = append(message.Attachments, newAttachmentRef(message.ID, f.ID, modelChat.CategoryFile, i))
	}

	if err := s.Messages.Create(ctx, message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return message, nil
}

// List возвращает страницу сообщений диалога (от старых к новым).
// Читающий обязан быть участником диалога; отрицательные skip/take - ошибка,
// take == 0 даёт пустую страницу.
func (s *MessageService) List(ctx context.Context, dialogID, viewerID string, skip, take int) ([]modelChat.Message, error) {
	if skip < 0 || take < 0 {
		return nil, apperrors.ErrInvalidPagination
	}

	dialog, err := s.Dialogs.FindByID(ctx, dialogID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if dialog == nil {
		return nil, apperrors.ErrDialogNotFound
	}
	if !dialog.HasParticipant(viewerID) {
		return nil, apperrors.ErrDialogAccessDenied
	}

	messages, err := s.Messages.FindByDialogID(ctx, dialogID, skip, take)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return messages, nil
}

// LastMessage возвращает последнее сообщение диалога, nil если их ещё нет.
// Свежесозданный диалог пуст - вызывающий обязан переживать nil.
func (s *MessageService) LastMessage(ctx context.Context, dialogID string) (*modelChat.Message, error) {
	message, err := s.Messages.LastMessage(ctx, dialogID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return message, nil
}

func newAttachmentRef(messageID, uploadID, category string, position int) modelChat.MessageAttachment {
	return modelChat.MessageAttachment{
		ID:        uuid.New().String(),
		MessageID: messageID,
		UploadID:  uploadID,
		Category:  category,
		Position:  position,
		CreatedAt: time.Now(),
	}
}
