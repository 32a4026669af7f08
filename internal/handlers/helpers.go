package handlers

import (
	"DocForge/internal/middleware"
	"DocForge/internal/model"
	"DocForge/internal/repo"
	"DocForge/internal/service"
	"encoding/json"
	"errors"
	"net/http"
)

// writeJSON сериализует v в ответ с заданным статусом.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError — единый формат ошибки для клиента.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusFromError переводит ошибки целостности в HTTP-статусы:
// unique → 409, FK → 422, not found → 404, enum → 400, доступ → 401/403.
func statusFromError(err error) int {
	var enumErr *model.ErrInvalidEnum
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repo.ErrUniqueViolation), errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, repo.ErrForeignKeyViolation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotRenderable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrInvalidMarkup):
		return http.StatusBadRequest
	case errors.As(err, &enumErr):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// requester достаёт id и роль из контекста. false — запрос анонимный.
func requester(r *http.Request) (string, model.UserRole, bool) {
	id, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return "", "", false
	}
	role, ok := middleware.GetUserRoleFromContext(r.Context())
	if !ok {
		role = model.RoleUser
	}
	return id, role, true
}
