package chat

import "time"

type Message struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	DialogID  string    `gorm:"index;not null"`
	SenderID  string    `gorm:"index;not null"`
	Text      string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index"`

	Attachments []MessageAttachment `gorm:"foreignKey:MessageID"`
}

func (Message) TableName() string {
	return "messages"
}

// AttachmentsByCategory раскладывает ссылки на вложения по категориям,
// сохраняя порядок внутри категории.
func (m *Message) AttachmentsByCategory(category string) []MessageAttachment {
	var out []MessageAttachment
	for _, a := range m.Attachments {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}
