package main

import (
	"DocForge/internal/config"
	"DocForge/internal/handlers"
	"DocForge/internal/middleware"
	"DocForge/internal/render"
	"DocForge/internal/repo"
	"DocForge/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	renderer, err := render.New()
	if err != nil {
		sugar.Fatalw("failed to load default templates", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	docRepo := repo.NewDocumentRepository(gormDB)
	tplRepo := repo.NewTemplateRepository(gormDB)
	logRepo := repo.NewLogRepository(gormDB)

	auditService := service.NewAuditService(logRepo, sugar)
	userService := service.NewUserService(userRepo)
	docService := service.NewDocumentService(docRepo, tplRepo, renderer)
	tplService := service.NewTemplateService(tplRepo)
	genService := service.NewGenerateService(docRepo, tplRepo, renderer, auditService, cfg.ServerURL)

	h := handlers.NewHandler(userService, docService, tplService, genService, auditService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"TemplateMaxSizeKB", cfg.TemplateMaxSizeKB,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
