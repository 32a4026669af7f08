package handlers

import (
	"DocForge/internal/config"
	"DocForge/internal/middleware"
	"DocForge/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	docService *service.DocumentService,
	tplService *service.TemplateService,
	genService *service.GenerateService,
	auditService *service.AuditService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	docHandler := NewDocumentHandler(docService, logger)
	tplHandler := NewTemplateHandler(tplService, logger, config)
	genHandler := NewGenerateHandler(genService, logger)
	logHandler := NewLogHandler(auditService, logger)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Get("/api/user/me", userHandler.Me)
	r.Put("/api/user/me", userHandler.Update)
	r.Delete("/api/user/me", userHandler.Delete)

	// Document routes
	r.Route("/api/documents", func(r chi.Router) {
		r.Post("/", docHandler.Create)
		r.Get("/", docHandler.List)
		r.Get("/{id}", docHandler.Get)
		r.Put("/{id}", docHandler.Update)
		r.Delete("/{id}", docHandler.Delete)
		r.Get("/{id}/html", docHandler.HTML)
	})

	// Template routes
	r.Route("/api/templates", func(r chi.Router) {
		r.Post("/", tplHandler.Create)
		r.Get("/", tplHandler.List)
		r.Get("/{id}", tplHandler.Get)
		r.Put("/{id}", tplHandler.Update)
		r.Delete("/{id}", tplHandler.Delete)
	})

	// Generation routes
	r.Post("/api/generate/bill", genHandler.Bill)
	r.Post("/api/generate/invoice", genHandler.Invoice)
	r.Post("/api/generate/receipt", genHandler.Receipt)

	// Audit log (ADMIN)
	r.Get("/api/logs", logHandler.List)

	return &Handler{Router: r}
}
