package services

import (
	"context"

	"github.com/google/uuid"

	"dialogs_backend/internal/auth"
	"dialogs_backend/internal/models"
	"dialogs_backend/internal/repositories"
	"dialogs_backend/internal/services/dto"
	"dialogs_backend/pkg/apperrors"
)

type AuthService struct {
	Users repositories.UserRepository
}

func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{Users: users}
}

// Register создает пользователя и сразу выдает токен
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if len(req.Password) < 8 {
		return nil, apperrors.ErrWeakPassword
	}

	existing, err := s.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	user.ID = uuid.New().String()

	if err := s.Users.Create(ctx, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueToken(user)
}

// Login проверяет учетные данные и выдает токен
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	// Одинаковый ответ для "нет такого email" и "не тот пароль"
	if user == nil || !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		AccessToken: token,
		User:        dto.NewUserResponse(user),
	}, nil
}
