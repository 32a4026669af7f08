package service

import (
	"DocForge/internal/model"
	"DocForge/internal/repo"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
)

// ErrNotRenderable — у документа нет сохранённого HTML и нет привязанного шаблона.
var ErrNotRenderable = errors.New("document is not renderable")

// DocumentService — CRUD документов с проверкой владения и перечислений.
type DocumentService struct {
	docs     repo.DocumentRepository
	tpls     repo.TemplateRepository
	renderer Renderer
}

// Renderer — контракт рендера, который нужен сервису документов.
type Renderer interface {
	Render(markup string, data any) (string, error)
	RenderDefault(name string, data any) (string, error)
}

func NewDocumentService(docs repo.DocumentRepository, tpls repo.TemplateRepository, renderer Renderer) *DocumentService {
	return &DocumentService{docs: docs, tpls: tpls, renderer: renderer}
}

// canAccess: админ видит всё, остальные — только своё.
func canAccess(doc *model.Document, requesterID string, role model.UserRole) bool {
	return role == model.RoleAdmin || doc.OwnerID == requesterID
}

// Create валидирует тип и сохраняет документ от имени владельца.
func (s *DocumentService) Create(ctx context.Context, ownerID, title string, content map[string]any, docType model.DocumentType) (*model.Document, error) {
	if !docType.Valid() {
		return nil, &model.ErrInvalidEnum{Field: "type", Value: string(docType)}
	}
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("marshal content: %w", err)
	}
	doc := &model.Document{
		OwnerID: ownerID,
		Title:   title,
		Content: datatypes.JSON(raw),
		Type:    docType,
	}
	if err := s.docs.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DocumentService) Get(ctx context.Context, id, requesterID string, role model.UserRole) (*model.Document, error) {
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canAccess(doc, requesterID, role) {
		return nil, ErrForbidden
	}
	return doc, nil
}

func (s *DocumentService) ListByOwner(ctx context.Context, ownerID string) ([]model.Document, error) {
	return s.docs.ListByOwner(ctx, ownerID)
}

func (s *DocumentService) ListByType(ctx context.Context, ownerID string, docType model.DocumentType) ([]model.Document, error) {
	if !docType.Valid() {
		return nil, &model.ErrInvalidEnum{Field: "type", Value: string(docType)}
	}
	return s.docs.ListByType(ctx, ownerID, docType)
}

// Update меняет заголовок, содержимое и/или тип документа.
func (s *DocumentService) Update(ctx context.Context, id, requesterID string, role model.UserRole, title *string, content map[string]any, docType *model.DocumentType) (*model.Document, error) {
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canAccess(doc, requesterID, role) {
		return nil, ErrForbidden
	}

	updates := map[string]any{}
	if title != nil {
		updates["title"] = *title
	}
	if content != nil {
		raw, err := json.Marshal(content)
		if err != nil {
			return nil, fmt.Errorf("marshal content: %w", err)
		}
		updates["content"] = datatypes.JSON(raw)
	}
	if docType != nil {
		if !docType.Valid() {
			return nil, &model.ErrInvalidEnum{Field: "type", Value: string(*docType)}
		}
		updates["type"] = *docType
	}
	if len(updates) == 0 {
		return doc, nil
	}
	return s.docs.Update(ctx, id, updates)
}

func (s *DocumentService) Delete(ctx context.Context, id, requesterID string, role model.UserRole) error {
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canAccess(doc, requesterID, role) {
		return ErrForbidden
	}
	return s.docs.Delete(ctx, id)
}

// HTML возвращает HTML-представление документа.
// Приоритет: сохранённый renderedDocument в content, иначе рендер
// привязанного шаблона поверх content. Ни того ни другого — ErrNotRenderable.
func (s *DocumentService) HTML(ctx context.Context, id, requesterID string, role model.UserRole) (string, error) {
	doc, err := s.Get(ctx, id, requesterID, role)
	if err != nil {
		return "", err
	}

	var content map[string]any
	if len(doc.Content) > 0 {
		if err := json.Unmarshal(doc.Content, &content); err != nil {
			return "", fmt.Errorf("unmarshal content: %w", err)
		}
	}
	if rendered, ok := content["renderedDocument"].(string); ok && rendered != "" {
		return rendered, nil
	}

	// ищем шаблон, привязанный к документу
	tpls, err := s.tpls.List(ctx)
	if err != nil {
		return "", err
	}
	for _, t := range tpls {
		if t.DocumentID != nil && *t.DocumentID == doc.ID {
			return s.renderer.Render(t.Markup, content)
		}
	}
	return "", ErrNotRenderable
}
