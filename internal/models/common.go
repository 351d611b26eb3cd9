package models

import (
	"time"
)

// BaseModel - общие поля всех сущностей.
// ID назначается в сервисном слое (uuid), а не базой,
// чтобы модели работали и на postgres, и на sqlite в тестах.
type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
