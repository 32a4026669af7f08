package repo

import (
	"errors"

	"gorm.io/gorm"
)

// Ошибки целостности, которые слой repo отдаёт наружу.
// Сервисы и хендлеры сравнивают через errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// translate приводит ошибки GORM к сентинелам пакета.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrUniqueViolation
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKeyViolation
	}
	return err
}
