package chat

import (
	"context"
	"fmt"

	"dialogs_backend/internal/models"
	modelChat "dialogs_backend/internal/models/chat"
	"dialogs_backend/internal/repositories"
	"dialogs_backend/pkg/apperrors"
)

// ImageExtensions - разрешённые расширения для категории images
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp"}

// Category - политика категории вложений: кардинальность и расширения.
// Пустой AllowedExtensions означает "любое расширение".
type Category struct {
	Name              string
	MaxCount          int // 0 - без ограничения
	AllowedExtensions []string
}

var (
	AudioCategory = Category{Name: modelChat.CategoryAudio, MaxCount: 1, AllowedExtensions: []string{".mp3"}}
	ImageCategory = Category{Name: modelChat.CategoryImage, AllowedExtensions: ImageExtensions}
	FileCategory  = Category{Name: modelChat.CategoryFile}
)

type AttachmentService struct {
	Uploads repositories.UploadRepository
}

func NewAttachmentService(uploads repositories.UploadRepository) *AttachmentService {
	return &AttachmentService{Uploads: uploads}
}

// Resolve находит файлы по ID строго в рамках владельца и политики категории.
// Любой запрошенный ID, который не нашёлся, принадлежит другому пользователю
// или имеет недопустимое расширение, делает весь запрос невалидным.
// Дубликаты ID схлопываются с сохранением порядка.
func (s *AttachmentService) Resolve(ctx context.Context, ownerID string, ids []string, category Category) ([]models.Upload, error) {
	unique := dedupe(ids)
	if len(unique) == 0 {
		return nil, nil
	}
	if category.MaxCount > 0 && len(unique) > category.MaxCount {
		return nil, apperrors.ErrInvalidAttachment(
			fmt.Sprintf("category %q accepts at most %d attachment(s)", category.Name, category.MaxCount))
	}

	found, err := s.Uploads.FindByIDsAndUserIDAndExtensions(ctx, unique, ownerID, category.AllowedExtensions)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(found) != len(unique) {
		return nil, apperrors.ErrInvalidAttachment(
			fmt.Sprintf("category %q: %d of %d attachment(s) are missing, not owned or have a disallowed extension",
				category.Name, len(unique)-len(found), len(unique)))
	}

	// Возвращаем в порядке запроса, а не в порядке выборки
	byID := make(map[string]models.Upload, len(found))
	for _, u := range found {
		byID[u.ID] = u
	}
	ordered := make([]models.Upload, 0, len(unique))
	for _, id := range unique {
		ordered = append(ordered, byID[id])
	}
	return ordered, nil
}

// ResolveSingle - вариант для одиночного слота (аудио).
// Пустой ID означает "вложения нет" и не является ошибкой.
func (s *AttachmentService) ResolveSingle(ctx context.Context, ownerID, id string, category Category) (*models.Upload, error) {
	if id == "" {
		return nil, nil
	}
	resolved, err := s.Resolve(ctx, ownerID, []string{id}, category)
	if err != nil {
		return nil, err
	}
	return &resolved[0], nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
