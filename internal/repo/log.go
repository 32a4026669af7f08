package repo

import (
	"DocForge/internal/model"
	"context"

	"gorm.io/gorm"
)

// LogRepository — контракт доступа к журналу. Только вставка и чтение:
// записи журнала неизменяемы.
type LogRepository interface {
	Append(ctx context.Context, entry *model.Log) error

	// ListRecent возвращает до limit последних записей, свежие первыми.
	ListRecent(ctx context.Context, limit int) ([]model.Log, error)
}

type logRepo struct {
	db *gorm.DB
}

// NewLogRepository создаёт реализацию репозитория для Log.
func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepo{db: db}
}

func (r *logRepo) Append(ctx context.Context, entry *model.Log) error {
	return translate(r.db.WithContext(ctx).Create(entry).Error)
}

func (r *logRepo) ListRecent(ctx context.Context, limit int) ([]model.Log, error) {
	var entries []model.Log
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
