package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Template — исходный текст разметки для рендера. Может жить без документа;
// при удалении документа ссылка обнуляется, сам шаблон остаётся.
type Template struct {
	ID string `gorm:"primaryKey;type:uuid"`

	Name   string `gorm:"not null"`
	Markup string `gorm:"not null"`

	DocumentID *string   `gorm:"type:uuid;index"` // опциональная ссылка на documents.id
	Document   *Document `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (t *Template) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
