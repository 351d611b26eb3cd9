package services

import (
	"context"

	"dialogs_backend/internal/models"
	"dialogs_backend/internal/repositories"
	"dialogs_backend/pkg/apperrors"
)

type UserService struct {
	Users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{Users: users}
}

// FindByID возвращает пользователя или ErrUserNotFound
func (s *UserService) FindByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Users.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// FindUsersByQuery ищет пользователей по подстроке имени или email
func (s *UserService) FindUsersByQuery(ctx context.Context, query string, limit int) ([]models.User, error) {
	users, err := s.Users.FindByQuery(ctx, query, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}
