package handlers

import (
	"DocForge/internal/model"
	"DocForge/internal/service"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DocumentHandler — CRUD документов и выдача их HTML-представления.
type DocumentHandler struct {
	DocService *service.DocumentService
	Logger     *zap.SugaredLogger
}

func NewDocumentHandler(docService *service.DocumentService, logger *zap.SugaredLogger) *DocumentHandler {
	return &DocumentHandler{DocService: docService, Logger: logger}
}

type createDocumentRequest struct {
	Title   string         `json:"title"`
	Content map[string]any `json:"content"`
	Type    string         `json:"type"`
}

type updateDocumentRequest struct {
	Title   *string        `json:"title,omitempty"`
	Content map[string]any `json:"content,omitempty"`
	Type    *string        `json:"type,omitempty"`
}

type documentDTO struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"owner_id"`
	Title     string          `json:"title"`
	Content   json.RawMessage `json:"content"`
	Type      string          `json:"type"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

func toDocumentDTO(d *model.Document) documentDTO {
	content := json.RawMessage(d.Content)
	if len(content) == 0 {
		content = json.RawMessage("null")
	}
	return documentDTO{
		ID:        d.ID,
		OwnerID:   d.OwnerID,
		Title:     d.Title,
		Content:   content,
		Type:      string(d.Type),
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: d.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// Create сохраняет документ от имени вызывающего.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := requester(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	doc, err := h.DocService.Create(r.Context(), userID, req.Title, req.Content, model.DocumentType(req.Type))
	if err != nil {
		h.Logger.Warnw("Create document failed", "user_id", userID, "error", err)
		writeError(w, statusFromError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, toDocumentDTO(doc))
}

// List возвращает документы вызывающего; ?type=BILL фильтрует по типу.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := requester(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var (
		docs []model.Document
		err  error
	)
	if t := r.URL.Query().Get("type"); t != "" {
		docs, err = h.DocService.ListByType(r.Context(), userID, model.DocumentType(t))
	} else {
		docs, err = h.DocService.ListByOwner(r.Context(), userID)
	}
	if err != nil {
		writeError(w, statusFromError(err), err.Error())
		return
	}

	out := make([]documentDTO, 0, len(docs))
	for i := range docs {
		out = append(out, toDocumentDTO(&docs[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := requester(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	doc, err := h.DocService.Get(r.Context(), chi.URLParam(r, "id"), userID, role)
	if err != nil {
		writeError(w, statusFromError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toDocumentDTO(doc))
}

func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := requester(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	var docType *model.DocumentType
	if req.Type != nil {
		dt := model.DocumentType(*req.Type)
		docType = &dt
	}

	doc, err := h.DocService.Update(r.Context(), chi.URLParam(r, "id"), userID, role, req.Title, req.Content, docType)
	if err != nil {
		h.Logger.Warnw("Update document failed", "user_id", userID, "error", err)
		writeError(w, statusFromError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toDocumentDTO(doc))
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := requester(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.DocService.Delete(r.Context(), chi.URLParam(r, "id"), userID, role); err != nil {
		writeError(w, statusFromError(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HTML отдаёт HTML-представление документа как text/html.
func (h *DocumentHandler) HTML(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := requester(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	html, err := h.DocService.HTML(r.Context(), chi.URLParam(r, "id"), userID, role)
	if err != nil {
		writeError(w, statusFromError(err), err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}
