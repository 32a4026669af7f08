package service

import (
	"DocForge/internal/model"
	"DocForge/internal/render"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newGenService(t *testing.T, docs *mockDocRepo, tpls *mockTplRepo, logs *mockLogRepo) *GenerateService {
	t.Helper()
	renderer, err := render.New()
	assert.NoError(t, err)
	audit := NewAuditService(logs, zap.NewNop().Sugar())
	return NewGenerateService(docs, tpls, renderer, audit, "http://localhost:8081")
}

func TestGenerateService_GenerateBill(t *testing.T) {
	ctx := context.Background()
	docs := new(mockDocRepo)
	logs := new(mockLogRepo)
	svc := newGenService(t, docs, new(mockTplRepo), logs)

	docs.On("Create", mock.Anything, mock.MatchedBy(func(d *model.Document) bool {
		return d.Type == model.DocumentBill &&
			d.OwnerID == "u-1" &&
			d.Title == "Bill for ACME" &&
			strings.Contains(string(d.Content), "renderedDocument")
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Document).ID = "d-new"
	}).Return(nil).Once()
	logs.On("Append", mock.Anything, mock.MatchedBy(func(e *model.Log) bool {
		return e.Level == model.LevelInfo
	})).Return(nil).Once()

	res, err := svc.GenerateBill(ctx, "u-1", BillRequest{
		ClientName:    "ACME",
		ClientAddress: "1 Main St",
		BillingDate:   "2026-01-01",
		DueDate:       "2026-02-01",
		Items:         []LineItem{{Description: "Widget", Quantity: 2, UnitPrice: 5, Total: 10}},
	})
	assert.NoError(t, err)
	assert.Equal(t, "generated", res.Status)
	assert.Equal(t, "d-new", res.DocumentID)
	assert.Equal(t, "http://localhost:8081/api/documents/d-new/html", res.DocumentURL)
	assert.Equal(t, "http://localhost:8081/api/documents/d-new/convert", res.PDFConversionURL)
	docs.AssertExpectations(t)
	logs.AssertExpectations(t)
}

func TestGenerateService_GenerateInvoiceWithStoredTemplate(t *testing.T) {
	ctx := context.Background()
	docs := new(mockDocRepo)
	tpls := new(mockTplRepo)
	logs := new(mockLogRepo)
	svc := newGenService(t, docs, tpls, logs)

	tpls.On("GetByID", mock.Anything, "tpl-1").Return(&model.Template{
		ID:     "tpl-1",
		Name:   "custom",
		Markup: "<p>Invoice {{.InvoiceNumber}} total {{.TotalAmount}}</p>",
	}, nil).Once()
	docs.On("Create", mock.Anything, mock.MatchedBy(func(d *model.Document) bool {
		return d.Type == model.DocumentInvoice &&
			strings.Contains(string(d.Content), "Invoice INV-7 total 120")
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Document).ID = "d-inv"
	}).Return(nil).Once()

	// запись в журнал не настроена строго: допускаем любой Append
	logs.On("Append", mock.Anything, mock.Anything).Return(nil)

	res, err := svc.GenerateInvoice(ctx, "u-1", InvoiceRequest{
		CustomerName:  "Bob",
		InvoiceNumber: "INV-7",
		TotalAmount:   120,
		TemplateID:    "tpl-1",
	})
	assert.NoError(t, err)
	assert.Equal(t, "d-inv", res.DocumentID)
	tpls.AssertExpectations(t)
	docs.AssertExpectations(t)
}

func TestGenerateService_ReceiptPDFOnRequestOnly(t *testing.T) {
	ctx := context.Background()

	mkSvc := func() *GenerateService {
		docs := new(mockDocRepo)
		logs := new(mockLogRepo)
		logs.On("Append", mock.Anything, mock.Anything).Return(nil)
		docs.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Document).ID = "d-r"
		}).Return(nil).Once()
		return newGenService(t, docs, new(mockTplRepo), logs)
	}

	res, err := mkSvc().GenerateReceipt(ctx, "u-1", ReceiptRequest{CustomerName: "Eve", PDFRequested: true})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.PDFConversionURL)

	res2, err := mkSvc().GenerateReceipt(ctx, "u-1", ReceiptRequest{CustomerName: "Eve"})
	assert.NoError(t, err)
	assert.Empty(t, res2.PDFConversionURL)
}
