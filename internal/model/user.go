package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User — владелец документов. Email уникален глобально.
type User struct {
	ID string `gorm:"primaryKey;type:uuid"`

	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(16);not null;default:USER"`

	// Связи
	Documents []Document `gorm:"foreignKey:OwnerID"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeCreate назначает uuid, если id не задан вызывающим кодом (тесты задают свой).
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}
