package repo

import (
	"DocForge/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB открывает соединение с Postgres и мигрирует схему.
// TranslateError включён, чтобы ошибки драйвера приводились к
// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate выполняет автомиграцию всех моделей схемы.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Document{},
		&model.Template{},
		&model.Log{},
	)
}
