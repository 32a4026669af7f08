package repo

import (
	"DocForge/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// DocumentRepository — контракт доступа к Document.
type DocumentRepository interface {
	// Create вставляет документ. Несуществующий владелец — ErrForeignKeyViolation.
	Create(ctx context.Context, doc *model.Document) error

	// GetByID возвращает документ или ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Document, error)

	// ListByOwner возвращает документы владельца по возрастанию created_at.
	ListByOwner(ctx context.Context, ownerID string) ([]model.Document, error)

	// ListByType — документы владельца заданного типа.
	ListByType(ctx context.Context, ownerID string, t model.DocumentType) ([]model.Document, error)

	// Update применяет updates и возвращает свежую запись; updated_at обновляется.
	Update(ctx context.Context, id string, updates map[string]any) (*model.Document, error)

	// Delete удаляет документ; ссылки шаблонов на него обнуляются.
	Delete(ctx context.Context, id string) error
}

type documentRepo struct {
	db *gorm.DB
}

// NewDocumentRepository создаёт реализацию репозитория для Document.
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, doc *model.Document) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", doc.OwnerID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrForeignKeyViolation
	}
	return translate(r.db.WithContext(ctx).Create(doc).Error)
}

func (r *documentRepo) GetByID(ctx context.Context, id string) (*model.Document, error) {
	var d model.Document
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r *documentRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Document, error) {
	var docs []model.Document
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at asc").
		Find(&docs).Error
	return docs, err
}

func (r *documentRepo) ListByType(ctx context.Context, ownerID string, t model.DocumentType) ([]model.Document, error) {
	var docs []model.Document
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND type = ?", ownerID, t).
		Order("created_at asc").
		Find(&docs).Error
	return docs, err
}

func (r *documentRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Document, error) {
	tx := r.db.WithContext(ctx).Model(&model.Document{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete выполняет SET NULL для ссылающихся шаблонов и удаление документа
// в одной транзакции. Шаблоны переживают удаление документа.
func (r *documentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var d model.Document
		if err := tx.First(&d, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Model(&model.Template{}).Where("document_id = ?", id).
			Update("document_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&d).Error
	})
}
