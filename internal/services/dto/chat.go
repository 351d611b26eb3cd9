package dto

import (
	"time"

	"dialogs_backend/internal/models/chat"
)

// Request structures

type CreateMessageAttachments struct {
	AudioID   string   `json:"audio_id"`
	ImagesIDs []string `json:"images_ids"`
	FilesIDs  []string `json:"files_ids"`
}

type CreateMessageRequest struct {
	Text        string                   `json:"text" validate:"max=5000"`
	Attachments CreateMessageAttachments `json:"attachments"`
}

// Response structures

// DialogResponse - публичное представление диалога глазами viewer'а:
// наружу уходит ID собеседника, никогда - собственный ID смотрящего.
type DialogResponse struct {
	ID          string    `json:"id"`
	CompanionID string    `json:"companion_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type MessageAttachmentsResponse struct {
	AudioID   *string  `json:"audio_id,omitempty"`
	ImagesIDs []string `json:"images_ids"`
	FilesIDs  []string `json:"files_ids"`
}

type MessageResponse struct {
	ID          string                     `json:"id"`
	DialogID    string                     `json:"dialog_id"`
	SenderID    string                     `json:"sender_id"`
	Text        string                     `json:"text"`
	Attachments MessageAttachmentsResponse `json:"attachments"`
	CreatedAt   time.Time                  `json:"created_at"`
}

// DialogListItemResponse - элемент списка диалогов: диалог + последнее
// сообщение (null, если в диалоге ещё не писали)
type DialogListItemResponse struct {
	DialogResponse
	LastMessage *MessageResponse `json:"last_message"`
}

// NewDialogResponse - чистая проекция диалога относительно viewerID
func NewDialogResponse(dialog *chat.Dialog, viewerID string) *DialogResponse {
	return &DialogResponse{
		ID:          dialog.ID,
		CompanionID: dialog.CompanionID(viewerID),
		CreatedAt:   dialog.CreatedAt,
	}
}

// NewMessageResponse - чистая проекция сообщения.
// Внутренние колонки хранения наружу не выходят, вложения группируются
// по категориям в порядке позиций.
func NewMessageResponse(message *chat.Message) *MessageResponse {
	resp := &MessageResponse{
		ID:        message.ID,
		DialogID:  message.DialogID,
		SenderID:  message.SenderID,
		Text:      message.Text,
		CreatedAt: message.CreatedAt,
		Attachments: MessageAttachmentsResponse{
			ImagesIDs: []string{},
			FilesIDs:  []string{},
		},
	}

	for _, a := range message.Attachments {
		switch a.Category {
		case chat.CategoryAudio:
			uploadID := a.UploadID
			resp.Attachments.AudioID = &uploadID
		case chat.CategoryImage:
			resp.Attachments.ImagesIDs = append(resp.Attachments.ImagesIDs, a.UploadID)
		case chat.CategoryFile:
			resp.Attachments.FilesIDs = append(resp.Attachments.FilesIDs, a.UploadID)
		}
	}

	return resp
}
