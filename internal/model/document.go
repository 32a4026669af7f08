package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Document — счёт/инвойс/чек. Content — произвольный вложенный JSON,
// схема его не интерпретирует, это делает рендер.
type Document struct {
	ID      string `gorm:"primaryKey;type:uuid"`
	OwnerID string `gorm:"type:uuid;not null;index"` // ссылка на users.id

	// Связи: удаление владельца каскадно удаляет его документы
	Owner *User `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Title   string         `gorm:"not null"`
	Content datatypes.JSON `gorm:"type:json"`
	Type    DocumentType   `gorm:"type:varchar(16);not null"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
