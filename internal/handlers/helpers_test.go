package handlers_test

import (
	"DocForge/internal/config"
	"DocForge/internal/handlers"
	"DocForge/internal/middleware"
	"DocForge/internal/model"
	"DocForge/internal/render"
	"DocForge/internal/repo"
	"DocForge/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Minimal mocks

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) UpdateUser(ctx context.Context, id string, updates map[string]any) (*model.User, error) {
	args := m.Called(ctx, id, updates)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

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

// testRepos — набор моков, подключённых к роутеру
type testRepos struct {
	users *mockUserRepo
	docs  *mockDocRepo
	tpls  *mockTplRepo
	logs  *mockLogRepo
}

// --- Helpers ---
func newTestRouter(t *testing.T) (http.Handler, *testRepos) {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret", TemplateMaxSizeKB: 64, ServerURL: "http://localhost:8081"}
	logger := zap.NewNop().Sugar()

	reps := &testRepos{
		users: &mockUserRepo{},
		docs:  &mockDocRepo{},
		tpls:  &mockTplRepo{},
		logs:  &mockLogRepo{},
	}

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("failed to init renderer: %v", err)
	}

	auditSvc := service.NewAuditService(reps.logs, logger)
	userSvc := service.NewUserService(reps.users)
	docSvc := service.NewDocumentService(reps.docs, reps.tpls, renderer)
	tplSvc := service.NewTemplateService(reps.tpls)
	genSvc := service.NewGenerateService(reps.docs, reps.tpls, renderer, auditSvc, cfg.ServerURL)

	h := handlers.NewHandler(userSvc, docSvc, tplSvc, genSvc, auditSvc, logger, cfg)
	return h.Router, reps
}

func addAuthCookie(t *testing.T, req *http.Request, userID string, role model.UserRole, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, role, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
