package handlers

import (
	"DocForge/internal/config"
	"DocForge/internal/model"
	"DocForge/internal/service"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// TemplateHandler — CRUD шаблонов разметки.
type TemplateHandler struct {
	TplService *service.TemplateService
	Logger     *zap.SugaredLogger
	Config     *config.Config
}

func NewTemplateHandler(tplService *service.TemplateService, logger *zap.SugaredLogger, cfg *config.Config) *TemplateHandler {
	return &TemplateHandler{TplService: tplService, Logger: logger, Config: cfg}
}

type createTemplateRequest struct {
	Name       string  `json:"name"`
	Markup     string  `json:"markup"`
	DocumentID *string `json:"document_id,omitempty"`
}

type updateTemplateRequest struct {
	Name   *string `json:"name,omitempty"`
	Markup *string `json:"markup,omitempty"`

	// DocumentID интерпретируется только при AttachDocument=true:
	// null означает "отвязать от документа".
	AttachDocument bool    `json:"attach_document,omitempty"`
	DocumentID     *string `json:"document_id,omitempty"`
}

type templateDTO struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Markup     string  `json:"markup"`
	DocumentID *string `json:"document_id"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

func toTemplateDTO(t *model.Template) templateDTO {
	return templateDTO{
		ID:         t.ID,
		Name:       t.Name,
		Markup:     t.Markup,
		DocumentID: t.DocumentID,
		CreatedAt:  t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// markupTooLarge — проверка лимита размера разметки из конфига.
func (h *TemplateHandler) markupTooLarge(markup string) bool {
	return len(markup) > h.Config.TemplateMaxSizeKB*1024
}

func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := requester(r); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Name == "" || req.Markup == "" {
		writeError(w, http.StatusBadRequest, "name and markup are required")
		return
	}
	if h.markupTooLarge(req.Markup) {
		writeError(w, http.StatusRequestEntityTooLarge, "markup too large")
		return
	}

	tpl, err := h.TplService.Create(r.Context(), req.Name, req.Markup, req.DocumentID)
	if err != nil {
		h.Logger.Warnw("Create template failed", "name", req.Name, "error", err)
		writeError(w, statusFromError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, toTemplateDTO(tpl))
}

func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := requester(r); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	tpls, err := h.TplService.List(r.Context())
	if err != nil {
		writeError(w, statusFromError(err), err.Error())
		return
	}
	out := make([]templateDTO, 0, len(tpls))
	for i := range tpls {
		out = append(out, toTemplateDTO(&tpls[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := requester(r); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	tpl, err := h.TplService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, statusFromError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toTemplateDTO(tpl))
}

func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := requester(r); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Markup != nil && h.markupTooLarge(*req.Markup) {
		writeError(w, http.StatusRequestEntityTooLarge, "markup too large")
		return
	}

	tpl, err := h.TplService.Update(r.Context(), chi.URLParam(r, "id"), req.Name, req.Markup, req.AttachDocument, req.DocumentID)
	if err != nil {
		h.Logger.Warnw("Update template failed", "id", chi.URLParam(r, "id"), "error", err)
		writeError(w, statusFromError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toTemplateDTO(tpl))
}

func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := requester(r); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.TplService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, statusFromError(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
