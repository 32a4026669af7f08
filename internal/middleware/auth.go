package middleware

import (
	"DocForge/internal/model"
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	userIDKey   contextKey = "user_id"
	userRoleKey contextKey = "user_role"
)

const (
	authCookieName = "auth_token"
	tokenTTL       = 24 * time.Hour
)

// claims — полезная нагрузка auth-токена.
type claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SetLoginCookie подписывает JWT с id и ролью пользователя и ставит cookie.
func SetLoginCookie(w http.ResponseWriter, userID string, role model.UserRole, secret string) error {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: userID,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Expires:  now.Add(tokenTTL),
	})
	return nil
}

// WithAuth разбирает auth-cookie и кладёт id и роль в контекст запроса.
// Запрос без валидного токена проходит дальше анонимно: доступ решают хендлеры.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(authCookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			var c claims
			token, err := jwt.ParseWithClaims(cookie.Value, &c, func(t *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			})
			if err != nil || !token.Valid || c.UserID == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, c.UserID)
			ctx = context.WithValue(ctx, userRoleKey, model.UserRole(c.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext возвращает id пользователя, если запрос аутентифицирован.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// GetUserRoleFromContext возвращает роль пользователя из токена.
func GetUserRoleFromContext(ctx context.Context) (model.UserRole, bool) {
	role, ok := ctx.Value(userRoleKey).(model.UserRole)
	return role, ok && role != ""
}
