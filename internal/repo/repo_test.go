package repo

import (
	"DocForge/internal/model"
	"fmt"
	"sync/atomic"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

var testDBSeq atomic.Int64

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория.
// Каждый тест получает отдельную базу, cache=shared нужен пулу соединений.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	// Миграции для всех моделей, используемых в репозиториях
	if err := db.AutoMigrate(&model.User{}, &model.Document{}, &model.Template{}, &model.Log{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}

// mkUser — хелпер для вставки пользователя напрямую
func mkUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	u := &model.User{Email: email, PasswordHash: "hash"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return u
}
