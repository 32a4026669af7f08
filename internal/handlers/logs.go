package handlers

import (
	"DocForge/internal/model"
	"DocForge/internal/service"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// LogHandler — чтение доменного журнала. Только для ADMIN.
type LogHandler struct {
	Audit  *service.AuditService
	Logger *zap.SugaredLogger
}

func NewLogHandler(audit *service.AuditService, logger *zap.SugaredLogger) *LogHandler {
	return &LogHandler{Audit: audit, Logger: logger}
}

type logDTO struct {
	ID        string `json:"id"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// List возвращает последние записи журнала; ?limit=N ограничивает выборку.
func (h *LogHandler) List(w http.ResponseWriter, r *http.Request) {
	_, role, ok := requester(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if role != model.RoleAdmin {
		writeError(w, http.StatusForbidden, "admin only")
		return
	}

	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	entries, err := h.Audit.Recent(r.Context(), limit)
	if err != nil {
		writeError(w, statusFromError(err), err.Error())
		return
	}

	out := make([]logDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, logDTO{
			ID:        e.ID,
			Level:     string(e.Level),
			Message:   e.Message,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, out)
}
