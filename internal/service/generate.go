package service

import (
	"DocForge/internal/model"
	"DocForge/internal/repo"
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// GenerateService собирает HTML-документ из шаблона и данных запроса
// и сохраняет результат как Document соответствующего типа.
type GenerateService struct {
	docs      repo.DocumentRepository
	tpls      repo.TemplateRepository
	renderer  Renderer
	audit     *AuditService
	serverURL string
}

func NewGenerateService(docs repo.DocumentRepository, tpls repo.TemplateRepository, renderer Renderer, audit *AuditService, serverURL string) *GenerateService {
	return &GenerateService{docs: docs, tpls: tpls, renderer: renderer, audit: audit, serverURL: serverURL}
}

// LineItem — строка счёта/инвойса/чека.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// BillRequest — данные для генерации счёта.
type BillRequest struct {
	ClientName    string     `json:"client_name"`
	ClientAddress string     `json:"client_address"`
	BillingDate   string     `json:"billing_date"`
	DueDate       string     `json:"due_date"`
	Items         []LineItem `json:"bill_items"`
}

// InvoiceRequest — данные для генерации инвойса. TemplateID опционален:
// пустое значение означает встроенный шаблон.
type InvoiceRequest struct {
	CustomerName    string     `json:"customer_name"`
	CustomerAddress string     `json:"customer_address"`
	InvoiceNumber   string     `json:"invoice_number"`
	DateIssued      string     `json:"date_issued"`
	DueDate         string     `json:"due_date"`
	Items           []LineItem `json:"items"`
	Subtotal        float64    `json:"subtotal"`
	TaxRate         float64    `json:"tax_rate"`
	TotalAmount     float64    `json:"total_amount"`
	TemplateID      string     `json:"template_id,omitempty"`
}

// ReceiptRequest — данные для генерации чека.
type ReceiptRequest struct {
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	Items         []LineItem `json:"items"`
	TotalAmount   float64    `json:"total_amount"`
	ReceiptDate   string     `json:"receipt_date"`
	PDFRequested  bool       `json:"pdf_requested"`
}

// GenerateResult — статус и ссылки на сгенерированный документ.
type GenerateResult struct {
	Status           string `json:"status"`
	DocumentID       string `json:"document_id"`
	DocumentURL      string `json:"document_url"`
	PDFConversionURL string `json:"pdf_conversion_url,omitempty"`
}

// renderWith выбирает сохранённый шаблон или встроенный по имени.
func (s *GenerateService) renderWith(ctx context.Context, templateID, defaultName string, data any) (string, error) {
	if templateID != "" {
		tpl, err := s.tpls.GetByID(ctx, templateID)
		if err != nil {
			return "", err
		}
		return s.renderer.Render(tpl.Markup, data)
	}
	return s.renderer.RenderDefault(defaultName, data)
}

// persist сохраняет сгенерированный HTML как Document и возвращает ссылки.
func (s *GenerateService) persist(ctx context.Context, ownerID, title string, docType model.DocumentType, html string, withPDF bool) (*GenerateResult, error) {
	content, err := json.Marshal(map[string]any{"renderedDocument": html})
	if err != nil {
		return nil, fmt.Errorf("marshal content: %w", err)
	}
	doc := &model.Document{
		OwnerID: ownerID,
		Title:   title,
		Content: datatypes.JSON(content),
		Type:    docType,
	}
	if err := s.docs.Create(ctx, doc); err != nil {
		s.audit.Error(ctx, fmt.Sprintf("failed to persist generated %s: %v", docType, err))
		return nil, err
	}
	s.audit.Info(ctx, fmt.Sprintf("generated %s document %s", docType, doc.ID))

	res := &GenerateResult{
		Status:      "generated",
		DocumentID:  doc.ID,
		DocumentURL: fmt.Sprintf("%s/api/documents/%s/html", s.serverURL, doc.ID),
	}
	if withPDF {
		// конвертация в PDF не реализована, ссылка только анонсируется
		res.PDFConversionURL = fmt.Sprintf("%s/api/documents/%s/convert", s.serverURL, doc.ID)
	}
	return res, nil
}

// GenerateBill рендерит счёт и сохраняет его за владельцем ownerID.
func (s *GenerateService) GenerateBill(ctx context.Context, ownerID string, req BillRequest) (*GenerateResult, error) {
	html, err := s.renderer.RenderDefault("bill.html", req)
	if err != nil {
		return nil, err
	}
	title := fmt.Sprintf("Bill for %s", req.ClientName)
	return s.persist(ctx, ownerID, title, model.DocumentBill, html, true)
}

// GenerateInvoice рендерит инвойс, при заданном TemplateID — по сохранённому шаблону.
func (s *GenerateService) GenerateInvoice(ctx context.Context, ownerID string, req InvoiceRequest) (*GenerateResult, error) {
	html, err := s.renderWith(ctx, req.TemplateID, "invoice.html", req)
	if err != nil {
		return nil, err
	}
	title := fmt.Sprintf("Invoice %s for %s", req.InvoiceNumber, req.CustomerName)
	return s.persist(ctx, ownerID, title, model.DocumentInvoice, html, true)
}

// GenerateReceipt рендерит чек; ссылка на PDF отдаётся только по запросу.
func (s *GenerateService) GenerateReceipt(ctx context.Context, ownerID string, req ReceiptRequest) (*GenerateResult, error) {
	html, err := s.renderer.RenderDefault("receipt.html", req)
	if err != nil {
		return nil, err
	}
	title := fmt.Sprintf("Receipt for %s", req.CustomerName)
	return s.persist(ctx, ownerID, title, model.DocumentReceipt, html, req.PDFRequested)
}
