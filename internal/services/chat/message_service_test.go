package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dialogs_backend/internal/models"
	modelChat "dialogs_backend/internal/models/chat"
	"dialogs_backend/internal/repositories"
	repoChat "dialogs_backend/internal/repositories/chat"
	"dialogs_backend/pkg/apperrors"
)

type messageFixture struct {
	db       *gorm.DB
	dialogs  *DialogService
	messages *MessageService
	alice    *models.User
	bob      *models.User
	carol    *models.User
	dialog   *modelChat.Dialog // диалог alice-bob
}

func newMessageFixture(t *testing.T) *messageFixture {
	t.Helper()
	db := newTestDB(t)

	dialogRepo := repoChat.NewDialogRepository(db)
	messageRepo := repoChat.NewMessageRepository(db)
	attachments := NewAttachmentService(repositories.NewUploadRepository(db))

	f := &messageFixture{
		db:       db,
		dialogs:  NewDialogService(dialogRepo),
		messages: NewMessageService(messageRepo, dialogRepo, attachments),
		alice:    createTestUser(t, db, "alice"),
		bob:      createTestUser(t, db, "bob"),
		carol:    createTestUser(t, db, "carol"),
	}

	dialog, err := f.dialogs.FindOrCreate(context.Background(), f.alice.ID, f.bob.ID)
	require.NoError(t, err)
	f.dialog = dialog
	return f
}

func (f *messageFixture) messageCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, f.db.Model(&modelChat.Message{}).Count(&count).Error)
	return count
}

func TestMessageService_Create_GoldenPath(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()

	msg, err := f.messages.Create(ctx, f.dialog.ID, f.alice.ID, CreateMessageInput{Text: "hi"})
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, f.dialog.ID, msg.DialogID)
	assert.Equal(t, f.alice.ID, msg.SenderID)
	assert.Equal(t, "hi", msg.Text)

	// Оба участника видят ровно это сообщение
	for _, viewer := range []string{f.alice.ID, f.bob.ID} {
		listed, err := f.messages.List(ctx, f.dialog.ID, viewer, 0, 30)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, msg.ID, listed[0].ID)
	}
}

func TestMessageService_Create_NonParticipant(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()

	_, err := f.messages.Create(ctx, f.dialog.ID, f.carol.ID, CreateMessageInput{Text: "intruder"})
	requireAppCode(t, err, apperrors.CodeForbidden)
	assert.EqualValues(t, 0, f.messageCount(t), "чужое сообщение не должно сохраниться")
}

func TestMessageService_Create_UnknownDialog(t *testing.T) {
	f := newMessageFixture(t)

	_, err := f.messages.Create(context.Background(), "00000000-0000-0000-0000-000000000000", f.alice.ID, CreateMessageInput{Text: "hi"})
	requireAppCode(t, err, apperrors.CodeNotFound)
}

func TestMessageService_Create_EmptyMessage(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()

	_, err := f.messages.Create(ctx, f.dialog.ID, f.alice.ID, CreateMessageInput{})
	requireAppCode(t, err, apperrors.CodeValidationFailed)

	// Пустой текст допустим при наличии хотя бы одного вложения
	audio := createTestUpload(t, f.db, f.alice.ID, ".mp3")
	msg, err := f.messages.Create(ctx, f.dialog.ID, f.alice.ID, CreateMessageInput{AudioID: audio.ID})
	require.NoError(t, err)
	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, modelChat.CategoryAudio, msg.Attachments[0].Category)
	assert.Equal(t, "", msg.Text)
}

func TestMessageService_Create_ForeignAttachment(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()

	// Аудио принадлежит bob - alice не может приложить его к своему сообщению
	foreign := createTestUpload(t, f.db, f.bob.ID, ".mp3")
	_, err := f.messages.Create(ctx, f.dialog.ID, f.alice.ID, CreateMessageInput{Text: "take this", AudioID: foreign.ID})
	requireAppCode(t, err, apperrors.CodeInvalidAttachment)
	assert.EqualValues(t, 0, f.messageCount(t))
}

func TestMessageService_Create_CategoryExtensionPolicy(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()

	// .mp3 не проходит как изображение
	mp3 := createTestUpload(t, f.db, f.alice.ID, ".mp3")
	_, err := f.messages.Create(ctx, f.dialog.ID, f.alice.ID, CreateMessageInput{ImageIDs: []string{mp3.ID}})
	requireAppCode(t, err, apperrors.CodeInvalidAttachment)

	// .pdf не проходит как аудио
	pdf := createTestUpload(t, f.db, f.alice.ID, ".pdf")
	_, err = f.messages.Create(ctx, f.dialog.ID, f.alice.ID, CreateMessageInput{AudioID: pdf.ID})
	requireAppCode(t, err, apperrors.CodeInvalidAttachment)

	// Категория files принимает любое расширение
	msg, err := f.messages.Create(ctx, f.dialog.ID, f.alice.ID, CreateMessageInput{FileIDs: []string{pdf.ID, mp3.ID}})
	require.NoError(t, err)
	require.Len(t, msg.Attachments, 2)
	assert.Equal(t, pdf.ID, msg.Attachments[0].UploadID)
	assert.Equal(t, mp3.ID, msg.Attachments[1].UploadID)
}

func TestMessageService_Create_MixedAttachments(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()

	audio := createTestUpload(t, f.db, f.alice.ID, ".mp3")
	img1 := createTestUpload(t, f.db, f.alice.ID, ".jpg")
	img2 := createTestUpload(t, f.db, f.alice.ID, ".png")
	doc := createTestUpload(t, f.db, f.alice.ID, ".docx")

	msg, err := f.messages.Create(ctx, f.dialog.ID, f.alice.ID, CreateMessageInput{
		Text:     "everything at once",
		AudioID:  audio.ID,
		ImageIDs: []string{img1.ID, img2.ID},
		FileIDs:  []string{doc.ID},
	})
	require.NoError(t, err)
	require.Len(t, msg.Attachments, 4)

	require.Len(t, msg.AttachmentsByCategory(modelChat.CategoryAudio), 1)
	require.Len(t, msg.AttachmentsByCategory(modelChat.CategoryFile), 1)

	// Порядок изображений внутри категории - порядок запроса
	images := msg.AttachmentsByCategory(modelChat.CategoryImage)
	require.Len(t, images, 2)
	assert.Equal(t, img1.ID, images[0].UploadID)
	assert.Equal(t, img2.ID, images[1].UploadID)

	// Перечитанное из хранилища сообщение несёт те же вложения
	listed, err := f.messages.List(ctx, f.dialog.ID, f.bob.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Len(t, listed[0].Attachments, 4)
}

func TestMessageService_List_Pagination(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := f.messages.Create(ctx, f.dialog.ID, f.alice.ID, CreateMessageInput{Text: "msg"})
		require.NoError(t, err)
	}

	all, err := f.messages.List(ctx, f.dialog.ID, f.alice.ID, 0, 100)
	require.NoError(t, err)
	require.Len(t, all, 7)

	// Смежные страницы покрывают полный список без пропусков и дублей
	var paged []modelChat.Message
	for skip := 0; skip < 7; skip += 3 {
		page, err := f.messages.List(ctx, f.dialog.ID, f.alice.ID, skip, 3)
		require.NoError(t, err)
		paged = append(paged, page...)
	}
	require.Len(t, paged, 7)
	for i := range all {
		assert.Equal(t, all[i].ID, paged[i].ID)
	}

	// take == 0 - пустая страница, не "всё"
	empty, err := f.messages.List(ctx, f.dialog.ID, f.alice.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	// Отрицательные границы - ошибка валидации
	_, err = f.messages.List(ctx, f.dialog.ID, f.alice.ID, -1, 10)
	requireAppCode(t, err, apperrors.CodeValidationFailed)
	_, err = f.messages.List(ctx, f.dialog.ID, f.alice.ID, 0, -1)
	requireAppCode(t, err, apperrors.CodeValidationFailed)
}

func TestMessageService_List_NonParticipant(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()

	_, err := f.messages.Create(ctx, f.dialog.ID, f.alice.ID, CreateMessageInput{Text: "secret"})
	require.NoError(t, err)

	_, err = f.messages.List(ctx, f.dialog.ID, f.carol.ID, 0, 30)
	requireAppCode(t, err, apperrors.CodeForbidden)
}

func TestMessageService_LastMessage(t *testing.T) {
	f := newMessageFixture(t)
	ctx := context.Background()

	// Свежесозданный диалог пуст
	last, err := f.messages.LastMessage(ctx, f.dialog.ID)
	require.NoError(t, err)
	assert.Nil(t, last)

	first, err := f.messages.Create(ctx, f.dialog.ID, f.alice.ID, CreateMessageInput{Text: "first"})
	require.NoError(t, err)
	second, err := f.messages.Create(ctx, f.dialog.ID, f.bob.ID, CreateMessageInput{Text: "second"})
	require.NoError(t, err)

	last, err = f.messages.LastMessage(ctx, f.dialog.ID)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, second.ID, last.ID)
	assert.NotEqual(t, first.ID, last.ID)

	// Отправка сообщения двигает last_message_id диалога
	dialog, err := f.dialogs.FindByID(ctx, f.dialog.ID)
	require.NoError(t, err)
	require.NotNil(t, dialog.LastMessageID)
	assert.Equal(t, second.ID, *dialog.LastMessageID)
}
