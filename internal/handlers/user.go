package handlers

import (
	"DocForge/internal/config"
	"DocForge/internal/middleware"
	"DocForge/internal/model"
	"DocForge/internal/service"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию, вход и операции над своим профилем.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userDTO — пользователь без хеша пароля.
type userDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toUserDTO(u *model.User) userDTO {
	return userDTO{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// Register создаёт пользователя и сразу ставит auth-cookie.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Email, req.Password, model.UserRole(req.Role))
	if err != nil {
		h.Logger.Warnw("Register failed", "email", req.Email, "error", err)
		writeError(w, statusFromError(err), err.Error())
		return
	}

	if err := middleware.SetLoginCookie(w, user.ID, user.Role, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Register: set cookie failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(user))
}

// Login проверяет пароль и ставит auth-cookie.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, statusFromError(err), "invalid credentials")
		return
	}

	if err := middleware.SetLoginCookie(w, user.ID, user.Role, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Login: set cookie failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(user))
}

// Me возвращает профиль аутентифицированного пользователя.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, _, ok := requester(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	user, err := h.UserService.Get(r.Context(), id)
	if err != nil {
		writeError(w, statusFromError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(user))
}

type updateUserRequest struct {
	Email *string `json:"email,omitempty"`
	Role  *string `json:"role,omitempty"`
}

// Update меняет email; роль может менять только админ.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, role, ok := requester(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	var newRole *model.UserRole
	if req.Role != nil {
		if role != model.RoleAdmin {
			writeError(w, http.StatusForbidden, "only admin can change role")
			return
		}
		rr := model.UserRole(*req.Role)
		newRole = &rr
	}

	user, err := h.UserService.Update(r.Context(), id, req.Email, newRole)
	if err != nil {
		h.Logger.Warnw("Update user failed", "id", id, "error", err)
		writeError(w, statusFromError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(user))
}

// Delete удаляет аккаунт вместе с документами (каскад).
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _, ok := requester(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := h.UserService.Delete(r.Context(), id); err != nil {
		writeError(w, statusFromError(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
