package service

import (
	"DocForge/internal/model"
	"DocForge/internal/render"
	"DocForge/internal/repo"
	"context"
	"errors"
	"fmt"
)

// ErrInvalidMarkup — разметка не прошла проверку парсером шаблонов.
var ErrInvalidMarkup = errors.New("invalid markup")

// TemplateService — CRUD шаблонов. Разметка проверяется парсером до записи.
type TemplateService struct {
	repo repo.TemplateRepository
}

func NewTemplateService(r repo.TemplateRepository) *TemplateService {
	return &TemplateService{repo: r}
}

func (s *TemplateService) Create(ctx context.Context, name, markup string, documentID *string) (*model.Template, error) {
	if err := render.Validate(markup); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMarkup, err)
	}
	tpl := &model.Template{Name: name, Markup: markup, DocumentID: documentID}
	if err := s.repo.Create(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

func (s *TemplateService) Get(ctx context.Context, id string) (*model.Template, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TemplateService) List(ctx context.Context) ([]model.Template, error) {
	return s.repo.List(ctx)
}

// Update меняет имя и/или разметку; attach управляет ссылкой на документ:
// attach=true с documentID=nil обнуляет ссылку (шаблон остаётся без документа).
func (s *TemplateService) Update(ctx context.Context, id string, name, markup *string, attach bool, documentID *string) (*model.Template, error) {
	updates := map[string]any{}
	if name != nil {
		updates["name"] = *name
	}
	if markup != nil {
		if err := render.Validate(*markup); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMarkup, err)
		}
		updates["markup"] = *markup
	}
	if attach {
		if documentID != nil {
			updates["document_id"] = *documentID
		} else {
			updates["document_id"] = nil
		}
	}
	if len(updates) == 0 {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.Update(ctx, id, updates)
}

func (s *TemplateService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
