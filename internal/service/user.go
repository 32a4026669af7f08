package service

import (
	"DocForge/internal/model"
	"DocForge/internal/repo"
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailTaken — email уже занят другим пользователем.
	ErrEmailTaken = errors.New("email already taken")
	// ErrInvalidCredentials — пара email/пароль не подошла.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden — операция запрещена для роли вызывающего.
	ErrForbidden = errors.New("forbidden")
)

// UserService инкапсулирует регистрацию, вход и управление пользователями.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register создаёт пользователя с хешированным паролем.
// Пустая роль превращается в USER, невалидная отклоняется до записи.
func (s *UserService) Register(ctx context.Context, email, password string, role model.UserRole) (*model.User, error) {
	if role == "" {
		role = model.RoleUser
	}
	if !role.Valid() {
		return nil, &model.ErrInvalidEnum{Field: "role", Value: string(role)}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, repo.ErrUniqueViolation) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login проверяет пароль и возвращает пользователя.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

// Update меняет email и/или роль. Роль проходит проверку перечисления до записи.
func (s *UserService) Update(ctx context.Context, id string, email *string, role *model.UserRole) (*model.User, error) {
	updates := map[string]any{}
	if email != nil {
		// email уникален глобально: проверяем коллизию с другим пользователем
		if existing, err := s.repo.GetUserByEmail(ctx, *email); err == nil && existing.ID != id {
			return nil, ErrEmailTaken
		} else if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
		updates["email"] = *email
	}
	if role != nil {
		if !role.Valid() {
			return nil, &model.ErrInvalidEnum{Field: "role", Value: string(*role)}
		}
		updates["role"] = *role
	}
	if len(updates) == 0 {
		return s.repo.GetUserByID(ctx, id)
	}
	return s.repo.UpdateUser(ctx, id, updates)
}

// Delete удаляет пользователя вместе с его документами.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteUser(ctx, id)
}
