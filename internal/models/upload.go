package models

import (
	"gorm.io/datatypes"
)

// Upload - запись о загруженном файле. Сам байтовый контент живет
// во внешнем хранилище, чат хранит только ссылки на эти записи.
type Upload struct {
	BaseModel
	UserID       string `gorm:"not null;index"`
	OriginalName string `gorm:"column:original_name"`
	Extension    string `gorm:"index"` // в нижнем регистре, с точкой: ".mp3"
	Path         string `gorm:"not null"`
	URL          string `gorm:"column:url"`
	MimeType     string
	Size         int64
	Metadata     datatypes.JSON `gorm:"column:metadata"`
}

func (Upload) TableName() string {
	return "uploads"
}
