package repo

import (
	"DocForge/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// UserRepository — контракт доступа к User для слоя сервиса.
type UserRepository interface {
	// CreateUser вставляет пользователя. Дубликат email — ErrUniqueViolation.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetUserByID возвращает пользователя или ErrNotFound.
	GetUserByID(ctx context.Context, id string) (*model.User, error)

	// GetUserByEmail возвращает пользователя или ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// UpdateUser применяет updates и возвращает свежую запись.
	// updated_at обновляется автоматически. Нет записи — ErrNotFound.
	UpdateUser(ctx context.Context, id string, updates map[string]any) (*model.User, error)

	// DeleteUser удаляет пользователя и каскадно все его документы.
	DeleteUser(ctx context.Context, id string) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	// Явная проверка email до вставки: ранняя ошибка вместо сырой ошибки драйвера
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUniqueViolation
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, translate(err)
	}
	return user, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *userRepo) UpdateUser(ctx context.Context, id string, updates map[string]any) (*model.User, error) {
	tx := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetUserByID(ctx, id)
}

// DeleteUser удаляет документы владельца и самого пользователя в одной транзакции.
// В Postgres каскад продублирован FK-констрейнтом, здесь он выполняется явно,
// чтобы поведение не зависело от настроек движка.
func (r *userRepo) DeleteUser(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u model.User
		if err := tx.First(&u, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		// обнуляем ссылки шаблонов на удаляемые документы
		ownedIDs := tx.Model(&model.Document{}).Select("id").Where("owner_id = ?", id)
		if err := tx.Model(&model.Template{}).Where("document_id IN (?)", ownedIDs).
			Update("document_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).Delete(&model.Document{}).Error; err != nil {
			return err
		}
		return tx.Delete(&u).Error
	})
}
