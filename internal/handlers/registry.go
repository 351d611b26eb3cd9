package handlers

// AppHandlers - контейнер всех HTTP-хендлеров приложения
type AppHandlers struct {
	AuthHandler *AuthHandler
	UserHandler *UserHandler
	ChatHandler *ChatHandler
}
