package handlers

import (
	"DocForge/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// GenerateHandler — генерация счетов, инвойсов и чеков из шаблонов.
type GenerateHandler struct {
	GenService *service.GenerateService
	Logger     *zap.SugaredLogger
}

func NewGenerateHandler(genService *service.GenerateService, logger *zap.SugaredLogger) *GenerateHandler {
	return &GenerateHandler{GenService: genService, Logger: logger}
}

// Bill генерирует счёт и сохраняет его как документ вызывающего.
func (h *GenerateHandler) Bill(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := requester(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req service.BillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.ClientName == "" {
		writeError(w, http.StatusBadRequest, "client_name is required")
		return
	}

	res, err := h.GenService.GenerateBill(r.Context(), userID, req)
	if err != nil {
		h.Logger.Errorw("GenerateBill failed", "user_id", userID, "error", err)
		writeError(w, statusFromError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// Invoice генерирует инвойс; template_id в теле выбирает сохранённый шаблон.
func (h *GenerateHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := requester(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req service.InvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.CustomerName == "" || req.InvoiceNumber == "" {
		writeError(w, http.StatusBadRequest, "customer_name and invoice_number are required")
		return
	}

	res, err := h.GenService.GenerateInvoice(r.Context(), userID, req)
	if err != nil {
		h.Logger.Errorw("GenerateInvoice failed", "user_id", userID, "error", err)
		writeError(w, statusFromError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// Receipt генерирует чек.
func (h *GenerateHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := requester(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req service.ReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.CustomerName == "" {
		writeError(w, http.StatusBadRequest, "customer_name is required")
		return
	}

	res, err := h.GenService.GenerateReceipt(r.Context(), userID, req)
	if err != nil {
		h.Logger.Errorw("GenerateReceipt failed", "user_id", userID, "error", err)
		writeError(w, statusFromError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, res)
}
