package repo

import (
	"DocForge/internal/model"
	"context"

	"gorm.io/gorm"
)

// TemplateRepository — контракт доступа к Template.
type TemplateRepository interface {
	// Create вставляет шаблон. Несуществующий document_id — ErrForeignKeyViolation.
	Create(ctx context.Context, tpl *model.Template) error

	// GetByID возвращает шаблон или ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Template, error)

	// List возвращает все шаблоны по возрастанию created_at.
	List(ctx context.Context) ([]model.Template, error)

	// Update применяет updates и возвращает свежую запись; updated_at обновляется.
	// Смена document_id на несуществующий документ — ErrForeignKeyViolation.
	Update(ctx context.Context, id string, updates map[string]any) (*model.Template, error)

	// Delete удаляет только сам шаблон; каскадов нет.
	Delete(ctx context.Context, id string) error
}

type templateRepo struct {
	db *gorm.DB
}

// NewTemplateRepository создаёт реализацию репозитория для Template.
func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepo{db: db}
}

// documentExists — проверка FK до записи, чтобы ошибка была ранней и типизированной.
func (r *templateRepo) documentExists(ctx context.Context, id string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Document{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrForeignKeyViolation
	}
	return nil
}

func (r *templateRepo) Create(ctx context.Context, tpl *model.Template) error {
	if tpl.DocumentID != nil {
		if err := r.documentExists(ctx, *tpl.DocumentID); err != nil {
			return err
		}
	}
	return translate(r.db.WithContext(ctx).Create(tpl).Error)
}

func (r *templateRepo) GetByID(ctx context.Context, id string) (*model.Template, error) {
	var t model.Template
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *templateRepo) List(ctx context.Context) ([]model.Template, error) {
	var tpls []model.Template
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&tpls).Error
	return tpls, err
}

func (r *templateRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Template, error) {
	if docID, ok := updates["document_id"]; ok && docID != nil {
		if s, ok := docID.(string); ok {
			if err := r.documentExists(ctx, s); err != nil {
				return nil, err
			}
		}
	}
	tx := r.db.WithContext(ctx).Model(&model.Template{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *templateRepo) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Template{})
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
