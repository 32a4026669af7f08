package service

import (
	"DocForge/internal/model"
	"DocForge/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// Общие моки репозиториев для тестов сервисов

type mockDocRepo struct{ mock.Mock }

func (m *mockDocRepo) Create(ctx context.Context, doc *model.Document) error {
	return m.Called(ctx, doc).Error(0)
}
func (m *mockDocRepo) GetByID(ctx context.Context, id string) (*model.Document, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*model.Document); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockDocRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Document, error) {
	args := m.Called(ctx, ownerID)
	if v, ok := args.Get(0).([]model.Document); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockDocRepo) ListByType(ctx context.Context, ownerID string, t model.DocumentType) ([]model.Document, error) {
	args := m.Called(ctx, ownerID, t)
	if v, ok := args.Get(0).([]model.Document); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockDocRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Document, error) {
	args := m.Called(ctx, id, updates)
	if d, ok := args.Get(0).(*model.Document); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockDocRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.DocumentRepository = (*mockDocRepo)(nil)

type mockTplRepo struct{ mock.Mock }

func (m *mockTplRepo) Create(ctx context.Context, tpl *model.Template) error {
	return m.Called(ctx, tpl).Error(0)
}
func (m *mockTplRepo) GetByID(ctx context.Context, id string) (*model.Template, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*model.Template); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockTplRepo) List(ctx context.Context) ([]model.Template, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Template); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockTplRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Template, error) {
	args := m.Called(ctx, id, updates)
	if t, ok := args.Get(0).(*model.Template); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockTplRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.TemplateRepository = (*mockTplRepo)(nil)

type mockLogRepo struct{ mock.Mock }

func (m *mockLogRepo) Append(ctx context.Context, entry *model.Log) error {
	return m.Called(ctx, entry).Error(0)
}
func (m *mockLogRepo) ListRecent(ctx context.Context, limit int) ([]model.Log, error) {
	args := m.Called(ctx, limit)
	if v, ok := args.Get(0).([]model.Log); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.LogRepository = (*mockLogRepo)(nil)
