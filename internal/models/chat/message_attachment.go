package chat

import "time"

// Категории вложений
const (
	CategoryAudio = "audio"
	CategoryImage = "image"
	CategoryFile  = "file"
)

// MessageAttachment - ссылка сообщения на запись файлового хранилища.
// Жизненный цикл самого файла принадлежит внешнему компоненту uploads.
type MessageAttachment struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	MessageID string `gorm:"index;not null"`
	UploadID  string `gorm:"index;not null"`
	Category  string `gorm:"not null"` // audio, image, file
	Position  int
	CreatedAt time.Time
}

func (MessageAttachment) TableName() string {
	return "message_attachments"
}
