package chat

import "time"

// Dialog - личная переписка ровно двух пользователей.
// PairKey - канонический ключ неупорядоченной пары участников,
// уникальный индекс по нему гарантирует не больше одного диалога на пару.
type Dialog struct {
	ID            string  `gorm:"primaryKey;type:uuid"`
	UserOneID     string  `gorm:"index;not null"`
	UserTwoID     string  `gorm:"index;not null"`
	PairKey       string  `gorm:"uniqueIndex;not null"`
	LastMessageID *string `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	LastMessage *Message `gorm:"foreignKey:LastMessageID"`
}

func (Dialog) TableName() string {
	return "dialogs"
}

// PairKey канонизирует неупорядоченную пару: (a,b) и (b,a) дают один ключ.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + ":" + b
}

// HasParticipant проверяет, состоит ли пользователь в диалоге
func (d *Dialog) HasParticipant(userID string) bool {
	return d.UserOneID == userID || d.UserTwoID == userID
}

// CompanionID возвращает ID собеседника относительно viewerID
func (d *Dialog) CompanionID(viewerID string) string {
	if d.UserOneID == viewerID {
		return d.UserTwoID
	}
	return d.UserOneID
}
