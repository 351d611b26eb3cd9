package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dialogs_backend/internal/middleware"
	"dialogs_backend/internal/services"
	chatservice "dialogs_backend/internal/services/chat"
	"dialogs_backend/internal/services/dto"
	"dialogs_backend/pkg/apperrors"
)

type ChatHandler struct {
	*BaseHandler
	dialogService  *chatservice.DialogService
	messageService *chatservice.MessageService
	userService    *services.UserService
}

func NewChatHandler(
	base *BaseHandler,
	dialogService *chatservice.DialogService,
	messageService *chatservice.MessageService,
	userService *services.UserService,
) *ChatHandler {
	return &ChatHandler{
		BaseHandler:    base,
		dialogService:  dialogService,
		messageService: messageService,
		userService:    userService,
	}
}

// RegisterRoutes регистрирует маршруты диалогов
func (h *ChatHandler) RegisterRoutes(r *gin.RouterGroup) {
	dialogs := r.Group("/dialogs")
	dialogs.Use(middleware.AuthMiddleware())
	{
		dialogs.GET("", h.GetDialogs)
		dialogs.GET("/:companionId", h.GetDialog)
		dialogs.GET("/:companionId/messages", h.GetMessages)
		dialogs.POST("/:companionId/messages", h.CreateMessage)
	}
}

// GetDialogs godoc
// @Summary  Список диалогов пользователя с последними сообщениями
// @Tags     dialogs
// @Produce  json
// @Success  200 {object} map[string]interface{}
// @Security BearerAuth
// @Router   /api/v1/dialogs [get]
func (h *ChatHandler) GetDialogs(c *gin.Context) {
	viewerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	dialogs, err := h.dialogService.FindByUserID(ctx, viewerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	items := make([]*dto.DialogListItemResponse, 0, len(dialogs))
	for i := range dialogs {
		dialog := &dialogs[i]

		lastMessage, err := h.messageService.LastMessage(ctx, dialog.ID)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}

		item := &dto.DialogListItemResponse{
			DialogResponse: *dto.NewDialogResponse(dialog, viewerID),
		}
		// В свежем диалоге сообщений может ещё не быть
		if lastMessage != nil {
			item.LastMessage = dto.NewMessageResponse(lastMessage)
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, gin.H{"dialogs": items})
}

// GetDialog godoc
// @Summary  Диалог с собеседником (создается при первом обращении)
// @Tags     dialogs
// @Produce  json
// @Param    companionId path string true "ID собеседника"
// @Success  200 {object} map[string]interface{}
// @Security BearerAuth
// @Router   /api/v1/dialogs/{companionId} [get]
func (h *ChatHandler) GetDialog(c *gin.Context) {
	viewerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	// Собеседник обязан существовать до любых операций с диалогом
	companion, err := h.userService.FindByID(ctx, c.Param("companionId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	dialog, err := h.dialogService.FindOrCreate(ctx, viewerID, companion.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dialog": dto.NewDialogResponse(dialog, viewerID)})
}

// GetMessages godoc
// @Summary  Страница сообщений диалога (от старых к новым)
// @Tags     dialogs
// @Produce  json
// @Param    companionId path  string true  "ID собеседника"
// @Param    skip        query int    false "Сколько сообщений пропустить"
// @Param    take        query int    false "Размер страницы"
// @Success  200 {object} map[string]interface{}
// @Security BearerAuth
// @Router   /api/v1/dialogs/{companionId}/messages [get]
func (h *ChatHandler) GetMessages(c *gin.Context) {
	viewerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	companion, err := h.userService.FindByID(ctx, c.Param("companionId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	skip, err := ParseQueryInt(c, "skip", 0)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	take, err := ParseQueryInt(c, "take", 30)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	dialog, err := h.dialogService.FindByUserIDs(ctx, viewerID, companion.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if dialog == nil {
		h.HandleServiceError(c, apperrors.ErrDialogNotFound)
		return
	}

	messages, err := h.messageService.List(ctx, dialog.ID, viewerID, skip, take)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	views := make([]*dto.MessageResponse, 0, len(messages))
	for i := range messages {
		views = append(views, dto.NewMessageResponse(&messages[i]))
	}

	c.JSON(http.StatusOK, gin.H{"messages": views})
}

// CreateMessage godoc
// @Summary  Отправка сообщения собеседнику
// @Tags     dialogs
// @Accept   json
// @Produce  json
// @Param    companionId path string                   true "ID собеседника"
// @Param    body        body dto.CreateMessageRequest true "Текст и ссылки на вложения"
// @Success  201 {object} map[string]interface{}
// @Security BearerAuth
// @Router   /api/v1/dialogs/{companionId}/messages [post]
func (h *ChatHandler) CreateMessage(c *gin.Context) {
	viewerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	companion, err := h.userService.FindByID(ctx, c.Param("companionId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CreateMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	// Первое сообщение создает диалог лениво
	dialog, err := h.dialogService.FindOrCreate(ctx, viewerID, companion.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	message, err := h.messageService.Create(ctx, dialog.ID, viewerID, chatservice.CreateMessageInput{
		Text:     req.Text,
		AudioID:  req.Attachments.AudioID,
		ImageIDs: req.Attachments.ImagesIDs,
		FileIDs:  req.Attachments.FilesIDs,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": dto.NewMessageResponse(message)})
}
