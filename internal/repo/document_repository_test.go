package repo

import (
	"DocForge/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestDocumentRepository_CreateRequiresOwner(t *testing.T) {
	db := newTestDB(t)
	r := NewDocumentRepository(db)
	ctx := context.Background()

	// владелец не существует — ErrForeignKeyViolation
	d := &model.Document{OwnerID: "missing-owner", Title: "x", Type: model.DocumentBill}
	assert.ErrorIs(t, r.Create(ctx, d), ErrForeignKeyViolation)

	// с существующим владельцем — ок
	u := mkUser(t, db, "owner@x.com")
	d2 := &model.Document{
		OwnerID: u.ID,
		Title:   "bill",
		Type:    model.DocumentBill,
		Content: datatypes.JSON([]byte(`{"amount":10,"items":[{"qty":1}]}`)),
	}
	assert.NoError(t, r.Create(ctx, d2))
	assert.NotEmpty(t, d2.ID)

	got, err := r.GetByID(ctx, d2.ID)
	assert.NoError(t, err)
	assert.Equal(t, u.ID, got.OwnerID)
	assert.JSONEq(t, `{"amount":10,"items":[{"qty":1}]}`, string(got.Content))
}

func TestDocumentRepository_ListByOwnerAndType(t *testing.T) {
	db := newTestDB(t)
	r := NewDocumentRepository(db)
	ctx := context.Background()

	u := mkUser(t, db, "owner@x.com")
	other := mkUser(t, db, "other@x.com")

	for _, spec := range []struct {
		title string
		typ   model.DocumentType
	}{
		{"b1", model.DocumentBill},
		{"i1", model.DocumentInvoice},
		{"b2", model.DocumentBill},
	} {
		assert.NoError(t, r.Create(ctx, &model.Document{OwnerID: u.ID, Title: spec.title, Type: spec.typ}))
	}
	assert.NoError(t, r.Create(ctx, &model.Document{OwnerID: other.ID, Title: "x", Type: model.DocumentBill}))

	all, err := r.ListByOwner(ctx, u.ID)
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	bills, err := r.ListByType(ctx, u.ID, model.DocumentBill)
	assert.NoError(t, err)
	if assert.Len(t, bills, 2) {
		assert.Equal(t, "b1", bills[0].Title)
		assert.Equal(t, "b2", bills[1].Title)
	}
}

func TestDocumentRepository_UpdateRefreshesTimestamp(t *testing.T) {
	db := newTestDB(t)
	r := NewDocumentRepository(db)
	ctx := context.Background()

	u := mkUser(t, db, "owner@x.com")
	d := &model.Document{OwnerID: u.ID, Title: "old", Type: model.DocumentReceipt}
	assert.NoError(t, r.Create(ctx, d))
	created := d.CreatedAt
	before := d.UpdatedAt

	time.Sleep(50 * time.Millisecond)

	got, err := r.Update(ctx, d.ID, map[string]any{"title": "new"})
	assert.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, created.UTC(), got.CreatedAt.UTC())
	assert.True(t, got.UpdatedAt.After(before))

	_, err = r.Update(ctx, "missing-id", map[string]any{"title": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDocumentRepository_DeleteNullsTemplateRefs(t *testing.T) {
	db := newTestDB(t)
	docs := NewDocumentRepository(db)
	tpls := NewTemplateRepository(db)
	ctx := context.Background()

	u := mkUser(t, db, "owner@x.com")
	d := &model.Document{OwnerID: u.ID, Title: "doc", Type: model.DocumentInvoice}
	assert.NoError(t, docs.Create(ctx, d))

	tpl := &model.Template{Name: "inv", Markup: "<p>{{.total}}</p>", DocumentID: &d.ID}
	assert.NoError(t, tpls.Create(ctx, tpl))

	assert.NoError(t, docs.Delete(ctx, d.ID))

	// шаблон пережил удаление документа, ссылка обнулена
	got, err := tpls.GetByID(ctx, tpl.ID)
	assert.NoError(t, err)
	assert.Nil(t, got.DocumentID)

	// документа больше нет
	_, err = docs.GetByID(ctx, d.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// повторное удаление — ErrNotFound
	assert.ErrorIs(t, docs.Delete(ctx, d.ID), ErrNotFound)
}
