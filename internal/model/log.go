package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Log — журнальная запись приложения. Append-only: после вставки не меняется,
// поэтому поля updated_at нет.
type Log struct {
	ID string `gorm:"primaryKey;type:uuid"`

	Message string   `gorm:"not null"`
	Level   LogLevel `gorm:"type:varchar(8);not null"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (l *Log) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
