package service

import (
	"DocForge/internal/model"
	"DocForge/internal/repo"
	"context"

	"go.uber.org/zap"
)

// AuditService пишет журнальные записи в БД. Это доменный журнал (таблица logs),
// а не замена zap: ошибки записи журнала не валят основную операцию.
type AuditService struct {
	repo   repo.LogRepository
	logger *zap.SugaredLogger
}

func NewAuditService(r repo.LogRepository, logger *zap.SugaredLogger) *AuditService {
	return &AuditService{repo: r, logger: logger}
}

// Append валидирует уровень и вставляет запись.
func (s *AuditService) Append(ctx context.Context, level model.LogLevel, message string) error {
	if !level.Valid() {
		return &model.ErrInvalidEnum{Field: "level", Value: string(level)}
	}
	return s.repo.Append(ctx, &model.Log{Level: level, Message: message})
}

// Info / Error / Debug — шорткаты, ошибку только логируем.
func (s *AuditService) Info(ctx context.Context, message string) {
	if err := s.Append(ctx, model.LevelInfo, message); err != nil {
		s.logger.Warnw("audit append failed", "level", "INFO", "error", err)
	}
}

func (s *AuditService) Error(ctx context.Context, message string) {
	if err := s.Append(ctx, model.LevelError, message); err != nil {
		s.logger.Warnw("audit append failed", "level", "ERROR", "error", err)
	}
}

func (s *AuditService) Debug(ctx context.Context, message string) {
	if err := s.Append(ctx, model.LevelDebug, message); err != nil {
		s.logger.Warnw("audit append failed", "level", "DEBUG", "error", err)
	}
}

// Recent возвращает последние записи журнала, свежие первыми.
func (s *AuditService) Recent(ctx context.Context, limit int) ([]model.Log, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return s.repo.ListRecent(ctx, limit)
}
