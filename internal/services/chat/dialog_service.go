package chat

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	modelChat "dialogs_backend/internal/models/chat"
	repoChat "dialogs_backend/internal/repositories/chat"
	"dialogs_backend/pkg/apperrors"
)

type DialogService struct {
	Dialogs *repoChat.DialogRepository
}

func NewDialogService(dialogs *repoChat.DialogRepository) *DialogService {
	return &DialogService{Dialogs: dialogs}
}

// FindByUserID возвращает все диалоги пользователя (свежие сверху)
func (s *DialogService) FindByUserID(ctx context.Context, userID string) ([]modelChat.Dialog, error) {
	dialogs, err := s.Dialogs.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dialogs, nil
}

// FindByUserIDs ищет диалог пары, nil если его ещё нет
func (s *DialogService) FindByUserIDs(ctx context.Context, userOneID, userTwoID string) (*modelChat.Dialog, error) {
	if userOneID == userTwoID {
		return nil, apperrors.ErrSelfDialog
	}
	dialog, err := s.Dialogs.FindByPairKey(ctx, modelChat.PairKey(userOneID, userTwoID))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dialog, nil
}

// FindOrCreate возвращает диалог пары, создавая его при первом контакте.
// Идемпотентен при конкурентных вызовах: проигравший гонку вставки получает
// gorm.ErrDuplicatedKey по уникальному pair_key и перечитывает победителя.
func (s *DialogService) FindOrCreate(ctx context.Context, userOneID, userTwoID string) (*modelChat.Dialog, error) {
	if userOneID == userTwoID {
		return nil, apperrors.ErrSelfDialog
	}

	pairKey := modelChat.PairKey(userOneID, userTwoID)

	existing, err := s.Dialogs.FindByPairKey(ctx, pairKey)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if existing != nil {
		return existing, nil
	}

	dialog := &modelChat.Dialog{
		ID:        uuid.New().String(),
		UserOneID: userOneID,
		UserTwoID: userTwoID,
		PairKey:   pairKey,
		CreatedAt: time.Now(),
	}

	err = s.Dialogs.Create(ctx, dialog)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Проиграли гонку первого контакта - диалог уже создан конкурентом
		winner, findErr := s.Dialogs.FindByPairKey(ctx, pairKey)
		if findErr != nil {
			return nil, apperrors.InternalError(findErr)
		}
		if winner == nil {
			return nil, apperrors.ErrConflict(err, "chat", "Dialog creation race could not be resolved")
		}
		return winner, nil
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dialog, nil
}

// FindByID возвращает диалог по ID или ErrDialogNotFound
func (s *DialogService) FindByID(ctx context.Context, id string) (*modelChat.Dialog, error) {
	dialog, err := s.Dialogs.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if dialog == nil {
		return nil, apperrors.ErrDialogNotFound
	}
	return dialog, nil
}
