package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dialogs_backend/internal/middleware"
	"dialogs_backend/internal/services"
	"dialogs_backend/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService *services.UserService
}

func NewUserHandler(base *BaseHandler, userService *services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		// /search до /:id, иначе gin отдаст "search" как id
		users.GET("/search", h.SearchUsers)
		users.GET("/:id", h.GetUser)
	}
}

// SearchUsers ищет пользователей по подстроке имени или email
func (h *UserHandler) SearchUsers(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}
	ctx := c.Request.Context()

	query := c.Query("q")
	limit, err := ParseQueryInt(c, "limit", 10)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	users, err := h.userService.FindUsersByQuery(ctx, query, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	views := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		views = append(views, dto.NewUserResponse(&users[i]))
	}

	c.JSON(http.StatusOK, gin.H{"users": views})
}

// GetUser возвращает публичные данные пользователя
func (h *UserHandler) GetUser(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}
	ctx := c.Request.Context()

	user, err := h.userService.FindByID(ctx, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.NewUserResponse(user)})
}
